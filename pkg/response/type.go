package response

// Header is the MWHEADER block. Requests carry the first three fields;
// responses echo them and fill the return fields.
type Header struct {
	MSGID         *string `json:"MSGID"`
	SOURCECHANNEL string  `json:"SOURCECHANNEL"`
	TXNSEQ        string  `json:"TXNSEQ"`
	RETURNCODE    *string `json:"RETURNCODE"`
	RETURNDESC    *string `json:"RETURNDESC"`
	ERRORHISTORY  *string `json:"ERRORHISTORY"`
	O360SEQ       *string `json:"O360SEQ"`
}

// Resp is the response body of every business API.
type Resp struct {
	MWHEADER Header `json:"MWHEADER"`
	TRANRS   any    `json:"TRANRS"`
}
