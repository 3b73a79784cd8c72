// Code scaffolded by goctl. Safe to edit.
// goctl 1.9.2

package types

type OpenSessionResponse struct {
	StatusCode   int    `json:"code"`
	StatusMsg    string `json:"msg"`
	SessionToken string `json:"session_token"`
	ExpiresIn    int64  `json:"expires_in"`
}

type ChatRequest struct {
	Query string `json:"query"`
}

type ChatResponse struct {
	StatusCode int    `json:"code"`
	StatusMsg  string `json:"msg"`
	Answer     string `json:"answer"`
}

type ChatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type HistoryResponse struct {
	StatusCode int           `json:"code"`
	StatusMsg  string        `json:"msg"`
	Messages   []ChatMessage `json:"messages"`
}

type CloseSessionResponse struct {
	StatusCode int    `json:"code"`
	StatusMsg  string `json:"msg"`
}
