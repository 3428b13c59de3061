package main

import (
	"encoding/json"
	"fmt"
	"os"
	"runtime"
	"runtime/debug"
	"strings"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	pflag "github.com/spf13/pflag"

	"github.com/letp-labs/simdb"
	"github.com/letp-labs/simdb/internal/cliconfig"
	"github.com/letp-labs/simdb/pkg/log"
)

const helpDescription = `
Look up carrier configuration (carrier, APN, PDP type, RF band and SIM
identifiers) for a test device against the bench sim database (simdb.xml).

The database path defaults to <tests-root>/config/uicc/simdb.xml, where the
tests root comes from LETP_TESTS, the config file or --tests-root.

A lookup that finds no matching operator record exits with status 1; that is
missing bench data, not a failure of the tool.
`

var exampleUsage = strings.TrimSpace(`
  simdb --iccid 8930212345678 --imsi 302220123456789
  simdb --db ./simdb.xml --iccid 8930212345678 --json
  simdb --carrier Telus
`)

func getVersion() string {
	if info, ok := debug.ReadBuildInfo(); ok && info.Main.Version != "" {
		return info.Main.Version
	}
	return "dev"
}

func main() {
	cfg := cliconfig.DefaultConfig()
	var (
		cfgPath string
		iccid   string
		imsi    string
		carrier string
		jsonOut bool
	)

	zl := cliconfig.Logger()

	root := &cobra.Command{
		Use:          "simdb",
		Short:        "Look up carrier configuration for a test device by ICCID and IMSI",
		Long:         strings.TrimSpace(helpDescription),
		Example:      exampleUsage,
		Version:      fmt.Sprintf("%s %s/%s", getVersion(), runtime.GOOS, runtime.GOARCH),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			// Load config file first (default $HOME/.simdb/config.toml),
			// then environment, then flag overrides.
			cfgFile := cfgPath
			if cfgFile == "" {
				cfgFile = cliconfig.DefaultConfigPath()
			}

			changed := map[string]bool{}
			cmd.Flags().Visit(func(f *pflag.Flag) { changed[f.Name] = true })

			if cfgFile != "" && cliconfig.FileExists(cfgFile) {
				fc, err := cliconfig.LoadFileConfig(cfgFile)
				if err != nil {
					return fmt.Errorf("load config: %w", err)
				}
				cliconfig.ApplyFileConfig(&cfg, fc, changed)
			}

			cliconfig.ApplyEnvConfig(&cfg, changed)

			if err := cfg.Validate(); err != nil {
				return err
			}

			if !cfg.Verbose {
				zl = zl.Level(zerolog.InfoLevel)
			}
			logger := log.NewZerologAdapterWithLogger(zl)

			res, err := simdb.Open(cfg.DBPath,
				simdb.WithSite(cfg.Site),
				simdb.WithLogger(logger),
			)
			if err != nil {
				return err
			}

			if carrier != "" {
				return printOperator(res, carrier, jsonOut)
			}

			if iccid == "" {
				return fmt.Errorf("--iccid is required (or use --carrier)")
			}

			info, ok := res.Resolve(iccid, imsi)
			if !ok {
				return fmt.Errorf("no sim configuration for iccid %q", iccid)
			}
			return printSimInfo(info, jsonOut)
		},
	}

	// Flags
	root.Flags().StringVar(&cfgPath, "config", "", "path to config file (default: $HOME/.simdb/config.toml)")
	root.Flags().StringVar(&cfg.TestsRoot, "tests-root", cfg.TestsRoot, "bench configuration base directory (default: $LETP_TESTS)")
	root.Flags().StringVar(&cfg.DBPath, "db", cfg.DBPath, "sim database file (default: <tests-root>/"+cliconfig.DefaultDBRelPath+")")
	root.Flags().StringVar(&cfg.Site, "site", cfg.Site, "active bench site, appended to Amarisoft carrier names")
	root.Flags().BoolVar(&cfg.Verbose, "verbose", cfg.Verbose, "enable debug-level lookup diagnostics")

	root.Flags().StringVar(&iccid, "iccid", "", "device ICCID to look up")
	root.Flags().StringVar(&imsi, "imsi", "", "device IMSI (optional; empty skips the IMSI prefix filter)")
	root.Flags().StringVar(&carrier, "carrier", "", "print the operator record for this carrier instead of resolving")
	root.Flags().BoolVar(&jsonOut, "json", false, "print the result as JSON")

	if err := root.Execute(); err != nil {
		zl.Error().Err(err).Msg("simdb")
		os.Exit(1)
	}
}

func printSimInfo(info simdb.SimInfo, jsonOut bool) error {
	if jsonOut {
		return printJSON(info)
	}
	fmt.Printf("carrier=%s\n", info.Carrier)
	fmt.Printf("apn=%s\n", info.APN)
	fmt.Printf("apn_tcp=%s\n", info.APNTCP)
	fmt.Printf("pdp=%s\n", info.PDP)
	fmt.Printf("band=%s\n", info.Band)
	fmt.Printf("iccid=%s\n", info.ICCID)
	fmt.Printf("imsi=%s\n", info.IMSI)
	fmt.Printf("mcc=%s\n", info.MCC)
	fmt.Printf("mnc=%s\n", info.MNC)
	fmt.Printf("tel=%s\n", info.Tel)
	fmt.Printf("pin=%s\n", info.PIN)
	fmt.Printf("puk=%s\n", info.PUK)
	fmt.Printf("smsc=%s\n", info.SMSC)
	return nil
}

func printOperator(res *simdb.Resolver, carrier string, jsonOut bool) error {
	op, ok := res.Database().Operator(carrier)
	if !ok {
		return fmt.Errorf("no operator record for carrier %q", carrier)
	}
	if jsonOut {
		return printJSON(map[string]interface{}{
			"carrier":        op.Name,
			"iccid_prefixes": op.ICCIDPrefixes,
			"imsi_prefixes":  op.IMSIPrefixes,
			"apn":            op.APN,
			"apn_tcp":        op.APNTCP,
			"pdp":            op.PDP,
			"band":           op.Band,
		})
	}
	fmt.Printf("carrier=%s\n", op.Name)
	fmt.Printf("iccid_prefixes=%s\n", strings.Join(op.ICCIDPrefixes, ","))
	fmt.Printf("imsi_prefixes=%s\n", strings.Join(op.IMSIPrefixes, ","))
	fmt.Printf("apn=%s\n", op.APN)
	fmt.Printf("apn_tcp=%s\n", op.APNTCP)
	fmt.Printf("pdp=%s\n", op.PDP)
	fmt.Printf("band=%s\n", op.Band)
	return nil
}

func printJSON(v interface{}) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
