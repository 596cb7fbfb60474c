package parser

import (
	"bufio"
	"bytes"
	"errors"
	"regexp"

	"github.com/gabriel-vasile/mimetype"
)

// sniffLines is how many leading lines are inspected for record keys.
const sniffLines = 5

var tokenLine = regexp.MustCompile(`^[a-z]{2}\s`)

var errUnrecognizedContent = errors.New("content not recognized as workbook or record text")

// DetectEncoding guesses the encoding from the leading bytes of a source.
// Zip containers are taken to be workbooks; text whose first lines start with
// two-letter record keys is taken to be the line encoding. The returned string
// explains the decision.
func DetectEncoding(head []byte) (Encoding, string, error) {
	for mt := mimetype.Detect(head); mt != nil; mt = mt.Parent() {
		if mt.Is("application/zip") {
			return Tabular, "zip signature (" + mimetype.Detect(head).String() + ")", nil
		}
	}

	scanner := bufio.NewScanner(bytes.NewReader(head))
	matches := 0
	for i := 0; i < sniffLines && scanner.Scan(); i++ {
		if tokenLine.Match(scanner.Bytes()) {
			matches++
		}
	}
	if matches >= 2 {
		return LineText, "record key lines", nil
	}

	return 0, errUnrecognizedContent.Error(), errUnrecognizedContent
}
