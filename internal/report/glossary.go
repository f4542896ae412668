package report

import "github.com/ginjaninja78/receipts-report/internal/types"

// Dictionary sheet layout.
const (
	DictionarySheet  = "Dictionary"
	FinalReportSheet = "Final_Report"

	DictionaryNameHeader  = "Nazwa"
	DictionaryLabelHeader = "Znaczenie"
)

// GlossaryEntry maps a report column to its human-readable label.
type GlossaryEntry struct {
	Name  types.Column
	Label string
}

// glossary is rendered verbatim, in this order, as the Dictionary sheet.
var glossary = []GlossaryEntry{
	{types.ColDate, "Data"},
	{types.ColNoOfReceipts, "Liczba paragonów"},
	{types.ColNoOfReceiptsNLC, "Liczba paragonów klientów nielojalnościowych"},
	{types.ColNoOfReceiptsLC, "Liczba paragonów klientów lojalnościowych"},
	{types.ColTurnover, "Obrót"},
	{types.ColTurnoverNLC, "Obrót klientów nielojalnościowych"},
	{types.ColTurnoverLC, "Obrót klientów lojalnościowych"},
	{types.ColTurnoverShareLC, "Udział klientów lojalnościowych w obrocie"},
	{types.ColAvgReceiptValue, "Średnia wartość paragonu"},
	{types.ColAvgReceiptValueNLC, "Średnia wartość paragonu klienta nielojalnościowego"},
	{types.ColAvgReceiptValueLC, "Średnia wartość paragonu klienta lojalnościowego"},
}

// Glossary returns a copy of the header glossary.
func Glossary() []GlossaryEntry {
	out := make([]GlossaryEntry, len(glossary))
	copy(out, glossary)
	return out
}
