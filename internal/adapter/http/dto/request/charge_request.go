package request

// ChargeAllRequest gates the bulk entry point. The caller confirms the run
// explicitly; the flag stands in for the human yes/no prompt in front of it.
type ChargeAllRequest struct {
	Confirm bool `json:"confirm"`
}
