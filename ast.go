package khat

import (
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

// AnyLanguage selects every fenced code block.
const AnyLanguage = "*"

// CodeOnly returns, in document order, the bodies of the fenced code blocks
// of a markdown document whose language is lang. Each body keeps the line
// breaks it was written with.
func CodeOnly(markdown, lang string) (string, error) {
	source := []byte(markdown)
	root := goldmark.DefaultParser().Parse(text.NewReader(source))

	var b strings.Builder
	err := ast.Walk(root, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		fenced, ok := n.(*ast.FencedCodeBlock)
		if !entering || !ok {
			return ast.WalkContinue, nil
		}

		if matchesLanguage(fenced.Language(source), lang) {
			segs := fenced.Lines()
			for i := 0; i < segs.Len(); i++ {
				seg := segs.At(i)
				b.Write(seg.Value(source))
			}
		}
		return ast.WalkSkipChildren, nil
	})
	if err != nil {
		return "", err
	}
	return b.String(), nil
}

func matchesLanguage(info []byte, lang string) bool {
	if lang == "" || lang == AnyLanguage {
		return true
	}
	return strings.EqualFold(string(info), lang)
}
