package cli

import (
	"bytes"
	"encoding/xml"
	"io"

	"github.com/TeriyakiSecky/android-sdk/internal/detector"
	"github.com/TeriyakiSecky/android-sdk/internal/xmldom"
)

const androidNS = "http://schemas.android.com/apk/res/android"

// markupParser builds xmldom trees with encoding/xml. Parse failures are
// logged by the client and surface as a nil document, which makes the
// driver skip the file.
type markupParser struct{}

func (p *markupParser) ParseXML(ctx *detector.XMLContext) *xmldom.Document {
	data, err := ctx.Driver.Client().ReadFile(ctx.File)
	if err != nil {
		ctx.Driver.Client().Log(err, "Could not read %s", ctx.File)
		return nil
	}
	root, err := parseElements(data)
	if err != nil {
		ctx.Driver.Client().Log(err, "Could not parse %s", ctx.File)
		return nil
	}
	if root == nil {
		return nil
	}
	return &xmldom.Document{Root: root}
}

func parseElements(data []byte) (*xmldom.Element, error) {
	decoder := xml.NewDecoder(bytes.NewReader(data))
	var root *xmldom.Element
	var stack []*xmldom.Element

	for {
		offset := decoder.InputOffset()
		token, err := decoder.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		switch t := token.(type) {
		case xml.StartElement:
			e := &xmldom.Element{
				Name:  t.Name.Local,
				Attrs: map[string]string{},
				Line:  lineAt(data, offset),
			}
			for _, attr := range t.Attr {
				e.Attrs[attrKey(attr)] = attr.Value
			}
			if len(stack) == 0 {
				root = e
			} else {
				parent := stack[len(stack)-1]
				parent.Children = append(parent.Children, e)
			}
			stack = append(stack, e)
		case xml.EndElement:
			if len(stack) > 0 {
				stack = stack[:len(stack)-1]
			}
		case xml.CharData:
			if len(stack) > 0 {
				stack[len(stack)-1].Text += string(t)
			}
		}
	}
	return root, nil
}

// attrKey reconstructs the prefixed attribute name; encoding/xml resolves
// prefixes to namespace URIs.
func attrKey(attr xml.Attr) string {
	switch attr.Name.Space {
	case "":
		return attr.Name.Local
	case androidNS, "android":
		return "android:" + attr.Name.Local
	case "xmlns":
		return "xmlns:" + attr.Name.Local
	default:
		return attr.Name.Space + ":" + attr.Name.Local
	}
}

func lineAt(data []byte, offset int64) int {
	if offset > int64(len(data)) {
		offset = int64(len(data))
	}
	return 1 + bytes.Count(data[:offset], []byte{'\n'})
}
