package output

import (
	"encoding/xml"
	"fmt"
	"io"

	"github.com/simkit-dev/modelcheck/internal/application/dto"
	"github.com/simkit-dev/modelcheck/internal/domain/entities"
	"github.com/simkit-dev/modelcheck/internal/domain/values"
)

// JUnitFormatter formats validation results as JUnit XML.
type JUnitFormatter struct {
	writer io.Writer
}

// NewJUnitFormatter creates a new JUnit formatter.
func NewJUnitFormatter(w io.Writer) *JUnitFormatter {
	return &JUnitFormatter{
		writer: w,
	}
}

// JUnitTestSuites JUnit XML structures
type JUnitTestSuites struct {
	XMLName    xml.Name         `xml:"testsuites"`
	Name       string           `xml:"name,attr"`
	Tests      int              `xml:"tests,attr"`
	Failures   int              `xml:"failures,attr"`
	Errors     int              `xml:"errors,attr"`
	Time       float64          `xml:"time,attr"`
	TestSuites []JUnitTestSuite `xml:"testsuite"`
}

type JUnitTestSuite struct {
	XMLName   xml.Name        `xml:"testsuite"`
	Name      string          `xml:"name,attr"`
	Tests     int             `xml:"tests,attr"`
	Failures  int             `xml:"failures,attr"`
	Errors    int             `xml:"errors,attr"`
	Skipped   int             `xml:"skipped,attr"`
	Time      float64         `xml:"time,attr"`
	TestCases []JUnitTestCase `xml:"testcase"`
}

type JUnitTestCase struct {
	XMLName   xml.Name      `xml:"testcase"`
	Name      string        `xml:"name,attr"`
	ClassName string        `xml:"classname,attr"`
	Time      float64       `xml:"time,attr"`
	Failure   *JUnitFailure `xml:"failure,omitempty"`
	Error     *JUnitError   `xml:"error,omitempty"`
	Skipped   *JUnitSkipped `xml:"skipped,omitempty"`
}

type JUnitFailure struct {
	Message string `xml:"message,attr"`
	Type    string `xml:"type,attr,omitempty"`
	Content string `xml:",chardata"`
}

type JUnitError struct {
	Message string `xml:"message,attr"`
	Content string `xml:",chardata"`
}

type JUnitSkipped struct {
	Message string `xml:"message,attr,omitempty"`
}

// Format writes the validation run as JUnit XML.
// Each configuration becomes a suite. Every error or warning message becomes a
// test case; a configuration without messages gets a single passing case.
func (f *JUnitFormatter) Format(resp *dto.ValidateResponse) error {
	suites := JUnitTestSuites{
		Name: "modelcheck validation",
		Time: resp.Metadata.Duration.Seconds(),
	}

	for _, report := range resp.Reports {
		suite := buildSuite(report)
		suites.Tests += suite.Tests
		suites.Failures += suite.Failures
		suites.Errors += suite.Errors
		suites.TestSuites = append(suites.TestSuites, suite)
	}

	_, err := f.writer.Write([]byte(xml.Header))
	if err != nil {
		return err
	}

	encoder := xml.NewEncoder(f.writer)
	encoder.Indent("", "  ")
	if err := encoder.Encode(suites); err != nil {
		return err
	}

	_, err = f.writer.Write([]byte("\n"))
	return err
}

func buildSuite(report dto.ConfigurationReport) JUnitTestSuite {
	suite := JUnitTestSuite{
		Name: report.Path,
		Time: report.Duration.Seconds(),
	}

	if report.LoadError != nil {
		suite.TestCases = []JUnitTestCase{{
			Name:      "load",
			ClassName: report.Path,
			Error: &JUnitError{
				Message: "configuration could not be loaded",
				Content: report.LoadError.Error(),
			},
		}}
		suite.Tests = 1
		suite.Errors = 1
		return suite
	}

	for _, msg := range report.Messages() {
		c := JUnitTestCase{
			Name:      caseName(msg),
			ClassName: className(report, msg),
		}

		switch {
		case msg.Type.Equals(values.NotifyError):
			c.Failure = &JUnitFailure{
				Message: msg.Text,
				Type:    string(msg.Code),
				Content: msg.Text,
			}
			suite.Failures++
		case msg.Type.Equals(values.NotifyWarning):
			c.Skipped = &JUnitSkipped{Message: msg.Text}
			suite.Skipped++
		default:
			continue
		}

		suite.TestCases = append(suite.TestCases, c)
	}

	if len(suite.TestCases) == 0 {
		suite.TestCases = []JUnitTestCase{{
			Name:      "validate",
			ClassName: report.Path,
			Time:      report.Duration.Seconds(),
		}}
	}

	suite.Tests = len(suite.TestCases)
	return suite
}

func caseName(msg entities.ValidationMessage) string {
	if name := msg.SubjectName(); name != "" {
		return fmt.Sprintf("%s %s", msg.SubjectType(), name)
	}
	return string(msg.Code)
}

func className(report dto.ConfigurationReport, msg entities.ValidationMessage) string {
	if block := msg.BuildingBlockName(); block != "" {
		return block
	}
	return report.Path
}
