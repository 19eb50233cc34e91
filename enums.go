package odp

import "strings"

// normalizeEnum lower-cases s and drops the separators the API uses inconsistently.
func normalizeEnum(s string) string {
	return strings.Map(func(r rune) rune {
		switch r {
		case '.', '_', '-', ' ':
			return -1
		}
		return r
	}, strings.ToLower(strings.TrimSpace(s)))
}

// lookupEnum resolves raw through table. Absent input returns the zero value,
// unrecognized input returns unknown.
func lookupEnum[E ~string](raw string, table map[string]E, unknown E) E {
	if raw == "" {
		return ""
	}
	if e, ok := table[normalizeEnum(raw)]; ok {
		return e
	}
	return unknown
}

// warnUnknownEnum logs a WarningUnknownEnum when parsed is the unknown member.
func warnUnknownEnum[E ~string](parsed, unknown E, field, raw string, args ...any) {
	if parsed == unknown {
		warn(WarningUnknownEnum, "unrecognized enumerated value",
			append([]any{"field", field, "value", raw}, args...)...)
	}
}

// DirectionCategory is the direction of a document relative to the USPTO.
type DirectionCategory string

const (
	DirectionIncoming DirectionCategory = "INCOMING"
	DirectionOutgoing DirectionCategory = "OUTGOING"
	DirectionInternal DirectionCategory = "INTERNAL"
	DirectionUnknown  DirectionCategory = "UNKNOWN"
)

var directionTable = map[string]DirectionCategory{
	"incoming": DirectionIncoming,
	"outgoing": DirectionOutgoing,
	"internal": DirectionInternal,
}

// ParseDirectionCategory normalizes s. "" yields "", unrecognized input yields DirectionUnknown.
func ParseDirectionCategory(s string) DirectionCategory {
	return lookupEnum(s, directionTable, DirectionUnknown)
}

// FileTypeCategory is the file type of a bulk data file.
type FileTypeCategory string

const (
	FileTypeZip     FileTypeCategory = "ZIP"
	FileTypeTar     FileTypeCategory = "TAR"
	FileTypeTarGz   FileTypeCategory = "TAR_GZ"
	FileTypeXML     FileTypeCategory = "XML"
	FileTypeJSON    FileTypeCategory = "JSON"
	FileTypeCSV     FileTypeCategory = "CSV"
	FileTypePDF     FileTypeCategory = "PDF"
	FileTypeUnknown FileTypeCategory = "UNKNOWN"
)

var fileTypeTable = map[string]FileTypeCategory{
	"zip":   FileTypeZip,
	"tar":   FileTypeTar,
	"targz": FileTypeTarGz,
	"tgz":   FileTypeTarGz,
	"xml":   FileTypeXML,
	"json":  FileTypeJSON,
	"csv":   FileTypeCSV,
	"pdf":   FileTypePDF,
}

// ParseFileTypeCategory normalizes s, so "tar.gz", "TARGZ" and "tgz" all give FileTypeTarGz.
func ParseFileTypeCategory(s string) FileTypeCategory {
	return lookupEnum(s, fileTypeTable, FileTypeUnknown)
}

// IsArchive reports whether files of this type can be extracted.
func (f FileTypeCategory) IsArchive() bool {
	return f == FileTypeZip || f == FileTypeTar || f == FileTypeTarGz
}

// ProductFrequency is how often a bulk data product is refreshed.
type ProductFrequency string

const (
	FrequencyDaily     ProductFrequency = "DAILY"
	FrequencyWeekly    ProductFrequency = "WEEKLY"
	FrequencyMonthly   ProductFrequency = "MONTHLY"
	FrequencyQuarterly ProductFrequency = "QUARTERLY"
	FrequencyAnnually  ProductFrequency = "ANNUALLY"
	FrequencyAdHoc     ProductFrequency = "AD_HOC"
	FrequencyUnknown   ProductFrequency = "UNKNOWN"
)

var frequencyTable = map[string]ProductFrequency{
	"daily":     FrequencyDaily,
	"weekly":    FrequencyWeekly,
	"monthly":   FrequencyMonthly,
	"quarterly": FrequencyQuarterly,
	"annually":  FrequencyAnnually,
	"annual":    FrequencyAnnually,
	"yearly":    FrequencyAnnually,
	"adhoc":     FrequencyAdHoc,
}

// ParseProductFrequency normalizes s. "ad hoc", "Ad-Hoc" and "AD_HOC" all give FrequencyAdHoc.
func ParseProductFrequency(s string) ProductFrequency {
	return lookupEnum(s, frequencyTable, FrequencyUnknown)
}

// ActiveIndicator is a practitioner's active flag. The API sends it in several spellings.
type ActiveIndicator string

const (
	ActiveYes     ActiveIndicator = "Y"
	ActiveNo      ActiveIndicator = "N"
	ActiveTrue    ActiveIndicator = "true"
	ActiveFalse   ActiveIndicator = "false"
	ActiveActive  ActiveIndicator = "Active"
	ActiveUnknown ActiveIndicator = "UNKNOWN"
)

var activeTable = map[string]ActiveIndicator{
	"y":      ActiveYes,
	"yes":    ActiveYes,
	"n":      ActiveNo,
	"no":     ActiveNo,
	"true":   ActiveTrue,
	"false":  ActiveFalse,
	"active": ActiveActive,
}

// ParseActiveIndicator normalizes s. "" yields "", unrecognized input yields ActiveUnknown.
func ParseActiveIndicator(s string) ActiveIndicator {
	return lookupEnum(s, activeTable, ActiveUnknown)
}

// Bool collapses the indicator to a boolean. ok is false for absent or unknown values.
func (a ActiveIndicator) Bool() (active, ok bool) {
	switch a {
	case ActiveYes, ActiveTrue, ActiveActive:
		return true, true
	case ActiveNo, ActiveFalse:
		return false, true
	}
	return false, false
}
