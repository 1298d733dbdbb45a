package parser

import (
	"archive/zip"
	"bytes"
	"encoding/xml"
	"io"
	"path"
	"strings"
)

// relationship is one entry of a .rels part.
type relationship struct {
	id     string
	target string
	kind   string
}

func readZipFile(r *zip.Reader, name string) ([]byte, error) {
	for _, f := range r.File {
		if f.Name == name {
			rc, err := f.Open()
			if err != nil {
				return nil, err
			}
			defer rc.Close()
			return io.ReadAll(rc)
		}
	}
	return nil, nil
}

func readElementText(decoder *xml.Decoder) (string, error) {
	var text string
	depth := 1
	for depth > 0 {
		token, err := decoder.Token()
		if err != nil {
			return text, err
		}
		switch t := token.(type) {
		case xml.CharData:
			text += string(t)
		case xml.StartElement:
			depth++
		case xml.EndElement:
			depth--
		}
	}
	return text, nil
}

func attr(se xml.StartElement, local string) string {
	for _, a := range se.Attr {
		if a.Name.Local == local {
			return a.Value
		}
	}
	return ""
}

// resolvePart resolves a relationship target against the part that holds it.
func resolvePart(source, target string) string {
	if strings.HasPrefix(target, "/") {
		return strings.TrimPrefix(target, "/")
	}
	return path.Join(path.Dir(source), target)
}

// relsPath returns the relationships part of part, e.g.
// "xl/worksheets/_rels/sheet1.xml.rels".
func relsPath(part string) string {
	return path.Join(path.Dir(part), "_rels", path.Base(part)+".rels")
}

// readRels returns the relationships of part whose type ends with kind.
func readRels(r *zip.Reader, part, kind string) ([]relationship, error) {
	data, err := readZipFile(r, relsPath(part))
	if err != nil || data == nil {
		return nil, err
	}

	var result []relationship
	decoder := xml.NewDecoder(bytes.NewReader(data))
	for {
		token, err := decoder.Token()
		if err != nil {
			break
		}
		if se, ok := token.(xml.StartElement); ok && se.Name.Local == "Relationship" {
			rel := relationship{id: attr(se, "Id"), target: attr(se, "Target"), kind: attr(se, "Type")}
			if strings.HasSuffix(rel.kind, "/"+kind) {
				result = append(result, rel)
			}
		}
	}
	return result, nil
}

// sheetParts maps each sheet name to its worksheet part.
func sheetParts(r *zip.Reader) (map[string]string, error) {
	const workbook = "xl/workbook.xml"
	data, err := readZipFile(r, workbook)
	if err != nil || data == nil {
		return nil, err
	}

	names := make(map[string]string) // rId -> sheet name
	decoder := xml.NewDecoder(bytes.NewReader(data))
	for {
		token, err := decoder.Token()
		if err != nil {
			break
		}
		if se, ok := token.(xml.StartElement); ok && se.Name.Local == "sheet" {
			if name, rID := attr(se, "name"), attr(se, "id"); name != "" && rID != "" {
				names[rID] = name
			}
		}
	}

	rels, err := readRels(r, workbook, "worksheet")
	if err != nil {
		return nil, err
	}
	result := make(map[string]string)
	for _, rel := range rels {
		if name, ok := names[rel.id]; ok {
			result[name] = resolvePart(workbook, rel.target)
		}
	}
	return result, nil
}
