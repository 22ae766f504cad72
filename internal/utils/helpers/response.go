package helpers

import (
	"encoding/json"
	"net/http"
)

type Response struct {
	Data     interface{} `json:"data,omitempty"`
	Error    string      `json:"error,omitempty"`
	ReadOnly bool        `json:"readOnly,omitempty"`
}

func JSON(w http.ResponseWriter, status int, data interface{}) {
	Raw(w, status, Response{Data: data})
}

func Error(w http.ResponseWriter, status int, errMsg string) {
	Raw(w, status, Response{Error: errMsg})
}

// ReadOnlyError tells the admin UI that writes are disabled.
func ReadOnlyError(w http.ResponseWriter, errMsg string) {
	Raw(w, http.StatusServiceUnavailable, Response{Error: errMsg, ReadOnly: true})
}

// Raw writes v as is, without the data/error envelope.
func Raw(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		return
	}
}
