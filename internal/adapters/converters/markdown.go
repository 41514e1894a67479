package converters

import (
	"fmt"
	"io"
	"strings"

	"github.com/GabrielNunesIT/openapi-table/internal/report"
)

const markdownFormat = "transposed"

// MarkdownConverter renders one transposed table per service inside a
// markdown narrative: each line is a field, each column an API.
type MarkdownConverter struct {
	delimiter string
}

// NewMarkdownConverter creates a new transposed markdown converter.
func NewMarkdownConverter(delimiter string) *MarkdownConverter {
	return &MarkdownConverter{delimiter: delimiter}
}

// Format returns the output format name.
func (c *MarkdownConverter) Format() string {
	return markdownFormat
}

// Write renders the report grouped by service and transposed.
func (c *MarkdownConverter) Write(r *report.Report, output io.Writer) error {
	var b strings.Builder

	delim := delimiterName(c.delimiter)

	b.WriteString("# API 설계서\n\n")
	b.WriteString("## API 목록 (서비스별 분리, 전치된 CSV 형식)\n\n")
	b.WriteString("### 읽는 방법\n")
	b.WriteString("- 각 서비스별로 분리되어 있습니다\n")
	b.WriteString("- 첫 번째 열: 필드명 (서비스명, 마이크로서비스 이름, 유저스토리 ID 등)\n")
	b.WriteString("- 두 번째 열부터: 각 API의 정보\n\n")

	for _, group := range r.Groups() {
		fmt.Fprintf(&b, "### %s\n\n", group.Service)

		for _, line := range group.Transpose() {
			b.WriteString(joinLine(line, c.delimiter))
			b.WriteString("\n")
		}

		b.WriteString("\n")
	}

	b.WriteString("## 사용 방법\n")
	fmt.Fprintf(&b, "- 이 파일은 %s로 구분된 CSV 형식입니다\n", delim)
	b.WriteString("- 각 서비스별로 테이블이 분리되어 있습니다\n")
	b.WriteString("- 각 행은 하나의 속성을 나타내며, 각 열은 하나의 API를 나타냅니다\n")
	fmt.Fprintf(&b, "- Excel에서 열 때 구분자를 %s로 설정하여 열어주세요\n", delim)
	fmt.Fprintf(&b, "- 또는 CSV 뷰어에서 구분자를 %s로 설정하여 보실 수 있습니다\n\n", delim)

	writeSummary(&b, r.Summary(), "서비스별 분리 + 전치된 CSV (행과 열이 바뀐 형태)")

	if _, err := io.WriteString(output, b.String()); err != nil {
		return fmt.Errorf("failed to write report: %w", err)
	}

	return nil
}
