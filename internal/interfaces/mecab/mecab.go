package mecab

import "github.com/shogo82148/go-mecab"

// MeCab is the part of mecab.MeCab the punctuator needs.
//
//go:generate moq -rm -out mecab_mock.go . MeCab
type MeCab interface {
	ParseToNode(string) (mecab.Node, error)
}
