package keyword

const (
	LeftBrace   = "{"
	RightBrace  = "}"
	Equal       = "="
	Semicolon   = ";"
	LineComment = "//"
)
