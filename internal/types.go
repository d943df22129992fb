package internal

// TranslationRequest is the body accepted by POST /translate/. InputStr is a
// pointer so that a missing or null field can be told apart from "".
type TranslationRequest struct {
	InputStr *string `json:"input_str" binding:"required"`
}

type TranslationResponse struct {
	TranslatedText string `json:"translated_text"`
}

type ErrorResponse struct {
	Detail string `json:"detail"`
}
