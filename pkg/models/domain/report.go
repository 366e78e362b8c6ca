package domain

import "fmt"

type ReportType string

const (
	ReportTypePDF   ReportType = "pdf"
	ReportTypeDOCX  ReportType = "docx"
	ReportTypeExcel ReportType = "excel"
)

// ReportTypes is the full set the collaborator service understands. The set
// offered to users is narrowed by configuration.
var ReportTypes = []ReportType{ReportTypePDF, ReportTypeDOCX, ReportTypeExcel}

func ParseReportType(s string) (ReportType, error) {
	for _, rt := range ReportTypes {
		if string(rt) == s {
			return rt, nil
		}
	}
	return "", fmt.Errorf("unknown report type %q", s)
}

// Extension is the file extension of the document the service returns.
func (r ReportType) Extension() string {
	switch r {
	case ReportTypeDOCX:
		return "docx"
	case ReportTypeExcel:
		return "xlsx"
	default:
		return "pdf"
	}
}

func (r ReportType) String() string {
	return string(r)
}
