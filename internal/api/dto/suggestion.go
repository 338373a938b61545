package dto

type SuggestionsResponse struct {
	List   string   `json:"list"`
	Values []string `json:"values"`
}
