package tokcore

// operatorBytes is the set of single bytes that always start a new
// token of their own (subject to the digit-adjacency exceptions below).
const operatorBytes = "#+-*/%&|^?!=<>[](){};:,.~"

type includeFrame struct {
	fileIndex int
	line      int
}

// Lex scans src as the logical file named filename, appending tokens to
// stream and growing files as #file markers are encountered. It
// implements spec.md §4.2 byte-by-byte.
func Lex(stream *Stream, files *FileTable, src []byte, filename string) error {
	fileIndex := files.Index(filename)
	line := 1
	var cur []byte
	var stack []includeFrame

	flush := func() {
		if len(cur) > 0 {
			stream.Append(string(cur), fileIndex, line)
			cur = cur[:0]
		}
	}

	n := len(src)
	i := 0
	for i < n {
		ch := src[i]
		i++

		if ch&0x80 != 0 {
			continue
		}

		if ch == '\n' {
			flush()
			line++
			continue
		}

		if ch == '\'' || ch == '"' {
			flush()
			quote := ch
			buf := []byte{ch}
			special := false
			for i < n {
				c := src[i]
				i++
				buf = append(buf, c)
				if c == '\n' {
					line++
				}
				closed := !special && c == quote
				if special {
					special = false
				} else {
					special = c == '\\'
				}
				if closed {
					break
				}
			}
			stream.Append(string(buf), fileIndex, line)
			continue
		}

		if ch == '#' && len(cur) == 0 {
			if stream.Tail != nil && stream.Tail.Text == "#" {
				stream.Tail.Text = "##"
				continue
			}

			directive := []byte{'#'}
			chPrev := byte('#')
			skip := false
			for i < n {
				c := src[i]
				i++
				if chPrev != '\\' && c == '\n' {
					break
				}
				if chPrev == '\\' {
					directive = append(directive, chPrev)
				}
				if chPrev == '#' && c == '#' {
					stream.Append("##", fileIndex, line)
					skip = true
					break
				}
				if c != ' ' {
					chPrev = c
				}
				if c != '\\' && c != '\n' {
					directive = append(directive, c)
				}
				if c == '\n' {
					line++
				}
			}
			if skip {
				continue
			}

			text := string(directive)
			if err := handleDirective(stream, files, text, &fileIndex, &line, &stack); err != nil {
				return err
			}
			continue
		}

		if indexByte(operatorBytes, ch) >= 0 {
			if ch == '.' && len(cur) > 0 && isDigit(cur[0]) {
				// Don't separate doubles like "5.4".
			} else if (ch == '+' || ch == '-') && len(cur) > 0 && isDigit(cur[0]) && cur[len(cur)-1] == 'e' {
				// Don't separate scientific notation like "4.2e+10".
			} else {
				flush()
				cur = append(cur, ch)
				if (ch == '+' || ch == '-' || ch == '>') && i < n && src[i] == ch {
					cur = append(cur, src[i])
					i++
				}
				flush()
				continue
			}
		}

		if isSpaceOrControl(ch) {
			flush()
			continue
		}

		cur = append(cur, ch)
	}
	flush()
	return nil
}

func handleDirective(stream *Stream, files *FileTable, text string, fileIndex, line *int, stack *[]includeFrame) error {
	if len(text) >= 5 && text[:5] == "#file" {
		if path, ok := extractQuoted(text); ok {
			*line++
			*stack = append(*stack, includeFrame{fileIndex: *fileIndex, line: *line})
			*fileIndex = files.Index(path)
			*line = 1
			return nil
		}
	}

	if len(text) >= 8 && text[:8] == "#endfile" {
		if len(*stack) == 0 {
			return &FatalError{Message: "Preprocessor bug! unbalanced #endfile"}
		}
		top := (*stack)[len(*stack)-1]
		*stack = (*stack)[:len(*stack)-1]
		*fileIndex = top.fileIndex
		*line = top.line
		return nil
	}

	stream.Append(text, *fileIndex, *line)
	return nil
}

func extractQuoted(line string) (string, bool) {
	first := indexByte(line, '"')
	if first < 0 {
		return "", false
	}
	rest := line[first+1:]
	second := indexByte(rest, '"')
	if second < 0 {
		return rest, true
	}
	return rest[:second], true
}

func indexByte(s string, b byte) int {
	for i := 0; i < len(s); i++ {
		if s[i] == b {
			return i
		}
	}
	return -1
}

func isSpaceOrControl(c byte) bool {
	if c == ' ' || c == '\t' || c == '\r' || c == '\v' || c == '\f' {
		return true
	}
	return c < 0x20
}
