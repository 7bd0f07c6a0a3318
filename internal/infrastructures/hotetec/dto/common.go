package dto

// ErrorFields is embedded in every response envelope. The provider fills
// coderr/txterr instead of the payload when a call fails.
type ErrorFields struct {
	Code string `xml:"coderr"`
	Text string `xml:"txterr"`
}

func (e ErrorFields) HasError() bool {
	return e.Code != ""
}

// Note is a free-form room note. Besides genuine extra services the provider
// uses it to carry the room description and commercial name.
type Note struct {
	Reference string `xml:"refnot"`
	Text      string `xml:"txtinf"`
}

type CancellationBlock struct {
	Date    string `xml:"feccan"`
	Percent string `xml:"porcan"`
	Amount  string `xml:"impcan"`
	Text    string `xml:"txtinf"`
}

// IsZero reports whether the element was present but empty.
func (c *CancellationBlock) IsZero() bool {
	return c == nil || (c.Date == "" && c.Percent == "" && c.Amount == "" && c.Text == "")
}

// PaymentTerms lives under infrsr/infrpg/inffpg.
type PaymentTerms struct {
	Total     string `xml:"imptot"`
	LimitDate string `xml:"fecpag"`
}

func (p *PaymentTerms) IsZero() bool {
	return p == nil || (p.Total == "" && p.LimitDate == "")
}

func (e ErrorFields) ErrorCode() string {
	return e.Code
}
