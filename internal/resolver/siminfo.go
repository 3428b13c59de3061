package resolver

// SimInfo is the result of a successful lookup: the carrier network
// configuration followed by the detail identifiers of the matched SIM.
// The detail fields stay empty when no detail record matched. Callers own
// the returned value; the resolver never retains or mutates it.
type SimInfo struct {
	Carrier string `json:"carrier"`
	APN     string `json:"apn,omitempty"`
	APNTCP  string `json:"apn_tcp,omitempty"`
	PDP     string `json:"pdp,omitempty"`
	Band    string `json:"band,omitempty"`

	ICCID string `json:"iccid,omitempty"`
	IMSI  string `json:"imsi,omitempty"`
	MCC   string `json:"mcc,omitempty"`
	MNC   string `json:"mnc,omitempty"`
	Tel   string `json:"tel,omitempty"`
	PIN   string `json:"pin,omitempty"`
	PUK   string `json:"puk,omitempty"`
	SMSC  string `json:"smsc,omitempty"`
}
