package source

import (
	"bytes"
	"path/filepath"
	"slices"
)

var (
	crlf = []byte("\r\n")
	lf   = []byte("\n")
	bom  = []byte{0xEF, 0xBB, 0xBF}
)

// normalizeCRLF заменяет все \r\n на \n, не трогая одиночные \r.
// Возвращает слайс и флаг: были ли замены.
func normalizeCRLF(content []byte) ([]byte, bool) {
	if !bytes.Contains(content, crlf) {
		return content, false
	}
	return bytes.ReplaceAll(content, crlf, lf), true
}

func removeBOM(content []byte) ([]byte, bool) {
	if bytes.HasPrefix(content, bom) {
		return content[len(bom):], true
	}
	return content, false
}

// buildLineIndex собирает смещения всех \n в файле. Смещение i-го
// перевода строки завершает строку i+1 (1-based).
func buildLineIndex(content []byte) []uint32 {
	var out []uint32
	for i, b := range content {
		if b == '\n' {
			out = append(out, uint32(i))
		}
	}
	return out
}

// toLineCol переводит байтовое смещение в 1-based строку и колонку.
// Сам символ \n принадлежит строке, которую он завершает.
func toLineCol(lineIdx []uint32, off uint32) LineCol {
	// количество переводов строки строго до off
	line, _ := slices.BinarySearch(lineIdx, off)
	if line == 0 {
		return LineCol{Line: 1, Col: off + 1}
	}
	startOff := lineIdx[line-1] + 1
	return LineCol{Line: uint32(line) + 1, Col: off - startOff + 1}
}

func normalizePath(p string) string {
	// единый вид в кроссплатформенных дифах
	return filepath.ToSlash(filepath.Clean(p))
}

// AbsolutePath возвращает абсолютный путь в нормализованном виде.
func AbsolutePath(path string) (string, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", err
	}
	return normalizePath(abs), nil
}

// RelativePath возвращает путь относительно baseDir в нормализованном виде.
func RelativePath(path, baseDir string) (string, error) {
	rel, err := filepath.Rel(baseDir, path)
	if err != nil {
		return "", err
	}
	return normalizePath(rel), nil
}

// BaseName returns the final path element.
func BaseName(path string) string {
	return filepath.Base(path)
}
