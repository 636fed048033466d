package models

import "strings"

// Fixed letter sections
const (
	LetterHeader   = "내 용 증 명"
	LetterDeadline = "본 서면 도달일로부터 7일 이내"
)

// LetterParties names both ends of a demand letter
type LetterParties struct {
	Recipient string `json:"recipient"`
	Sender    string `json:"sender"`
}

// DemandLetter is a structured 내용증명 consumed by the document renderer
type DemandLetter struct {
	Title        string        `json:"title"`
	Header       string        `json:"header"`
	Parties      LetterParties `json:"parties"`
	Introduction string        `json:"introduction"`
	Body         string        `json:"body"`
	LegalBasis   string        `json:"legalBasis"`
	Warning      string        `json:"warning"`
	Deadline     string        `json:"deadline"`
}

// Render lays the letter out as plain text for archiving and download
func (l DemandLetter) Render() string {
	var b strings.Builder
	b.WriteString(l.Header)
	b.WriteString("\n\n")
	b.WriteString("제목: ")
	b.WriteString(l.Title)
	b.WriteString("\n\n")
	b.WriteString(l.Parties.Recipient)
	b.WriteString("\n")
	b.WriteString(l.Parties.Sender)
	b.WriteString("\n\n")

	for _, section := range []string{l.Introduction, l.Body, l.LegalBasis, l.Warning} {
		if section == "" {
			continue
		}
		b.WriteString(section)
		b.WriteString("\n\n")
	}

	b.WriteString("이행 기한: ")
	b.WriteString(l.Deadline)
	b.WriteString("\n")
	return b.String()
}
