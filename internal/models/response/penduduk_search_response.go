package response

// PendudukSearchResult is one candidate from the committee directory
// lookup, tagged with the directory it came from.
type PendudukSearchResult struct {
	ID         uint   `json:"id"`
	Nama       string `json:"nama"`
	NIK        string `json:"nik"`
	NoHP       string `json:"no_hp,omitempty"`
	SourceType string `json:"source_type"`
}
