package repository

type seedSection struct {
	title, slug, desc, group string
	order                    int
	sub                      bool
}

var defaultSections = []seedSection{
	{"Introduction", "introduction", "Welcome to the API", "General", 1, false},
	{"Error Codes", "errors", "HTTP status codes", "General", 2, false},
	{"List Models", "chat-models", "Available models", "General", 3, false},
	{"Ecosystem", "ecosystem", "Platform components", "General", 4, false},
	{"Quick Start", "quickstart", "Get started quickly", "Guides", 5, false},
	{"Chat Completions", "chat-completions", "Chat API usage", "Guides", 6, false},
	{"Streaming", "chat-streaming", "Streaming responses", "Guides", 7, true},
	{"Vision", "chat-vision", "Image generation", "Guides", 8, true},
}

type seedModel struct {
	name, display, desc string
}

var defaultModels = []seedModel{
	{"lunaby-pro", "Lunaby Pro", "High-performance model for complex tasks."},
	{"lunaby", "Lunaby", "Standard versatile model for general use."},
	{"lunaby-vision", "Lunaby Vision", "Image generation model."},
}
