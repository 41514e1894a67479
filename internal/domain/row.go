package domain

import (
	"net/http"
	"strings"
)

// Method is an upper-case HTTP verb from the supported set.
type Method string

// Supported HTTP methods. Anything else in a path item is ignored.
const (
	MethodGet    Method = http.MethodGet
	MethodPost   Method = http.MethodPost
	MethodPut    Method = http.MethodPut
	MethodDelete Method = http.MethodDelete
	MethodPatch  Method = http.MethodPatch
)

// SupportedMethods lists the whitelist in canonical order.
var SupportedMethods = []Method{MethodGet, MethodPost, MethodPut, MethodDelete, MethodPatch}

// ParseMethod maps a path-item key onto a supported method, case-insensitively.
func ParseMethod(key string) (Method, bool) {
	m := Method(strings.ToUpper(key))
	for _, s := range SupportedMethods {
		if m == s {
			return m, true
		}
	}

	return "", false
}

// Column identifies one field of a Row.
type Column int

// Row columns in output order.
const (
	ColService Column = iota
	ColMicroservice
	ColUserStoryID
	ColUserStoryTitle
	ColController
	ColPurpose
	ColMethod
	ColBasePath
	ColPath
	ColPathVariables
	ColQueryVariables
	ColRequestDTO
	ColRequestIsArray
	ColRequestStructure
	ColResponseDTO
	ColResponseIsArray
	ColResponseStructure

	ColumnCount int = iota
)

var columnHeaders = [ColumnCount]string{
	"서비스명",
	"마이크로서비스 이름",
	"유저스토리 ID",
	"유저스토리 제목",
	"Controller 이름",
	"API 목적",
	"API Method",
	"API 그룹 Path",
	"API Path",
	"Path 변수",
	"Query 변수",
	"Request DTO 이름",
	"Request DTO 배열 여부",
	"Request DTO 구조",
	"Response DTO 이름",
	"Response DTO 배열 여부",
	"Response DTO 구조",
}

// Header returns the report header of the column.
func (c Column) Header() string {
	if c < 0 || int(c) >= ColumnCount {
		return ""
	}

	return columnHeaders[c]
}

// Columns returns every column in output order.
func Columns() []Column {
	cols := make([]Column, ColumnCount)
	for i := range cols {
		cols[i] = Column(i)
	}

	return cols
}

// Headers returns the header line values in output order.
func Headers() []string {
	headers := columnHeaders
	return headers[:]
}

// Row is one flattened operation. Its width is fixed by the type.
type Row [ColumnCount]string

// Get returns the value of a column.
func (r Row) Get(c Column) string {
	return r[c]
}

// Service returns the service display name used for grouping.
func (r Row) Service() string {
	return r[ColService]
}

// Fields returns the row values as a slice.
func (r Row) Fields() []string {
	return r[:]
}
