package mecab

import (
	"fmt"
	"slices"
	"strings"

	"github.com/shogo82148/go-mecab"

	mymecab "github.com/hekt/live-dictation/internal/interfaces/mecab"
	"github.com/hekt/live-dictation/internal/punctuator"
)

const (
	period = "。"
	comma  = "、"
	space  = " "
	none   = ""
)

// morpheme holds the IPA dictionary features a separator decision looks at.
type morpheme struct {
	surface  string
	part     string
	partType string
	form     string
}

var _ punctuator.PunctuatorInterface = (*Punctuator)(nil)

// Punctuator rewrites the space separated tokens a Japanese model emits
// into a sentence with 。 and 、.
type Punctuator struct {
	tagger  mymecab.MeCab
	builder strings.Builder
}

func NewPunctuator(tagger mymecab.MeCab) (*Punctuator, error) {
	if tagger == nil {
		return nil, fmt.Errorf("tagger must be specified")
	}
	return &Punctuator{tagger: tagger}, nil
}

// Open creates a Punctuator backed by libmecab. dicdir may be empty to use
// the system dictionary. The returned func releases the tagger.
func Open(dicdir string) (*Punctuator, func(), error) {
	args := map[string]string{}
	if dicdir != "" {
		args["dicdir"] = dicdir
	}
	tagger, err := mecab.New(args)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create mecab tagger: %w", err)
	}
	// ParseToNode returns broken nodes until the tagger has parsed once.
	if _, err := tagger.Parse(""); err != nil {
		tagger.Destroy()
		return nil, nil, fmt.Errorf("failed to warm up mecab tagger: %w", err)
	}

	p, err := NewPunctuator(tagger)
	if err != nil {
		tagger.Destroy()
		return nil, nil, err
	}
	return p, tagger.Destroy, nil
}

// Punctuate decides, for every space in sentence, whether to keep it,
// drop it, or replace it with a period or comma.
// It reuses an internal buffer and is not safe for concurrent use.
func (p *Punctuator) Punctuate(sentence string) (string, error) {
	head, err := p.tagger.ParseToNode(sentence)
	if err != nil {
		return "", fmt.Errorf("failed to parse sentence: %w", err)
	}

	p.builder.Reset()
	prev := morpheme{}
	// The first node is BOS and has no surface.
	for n := head.Next(); n.Stat() == mecab.NormalNode || n.Stat() == mecab.UnknownNode; n = n.Next() {
		m, spaced := toMorpheme(n)
		if spaced {
			p.builder.WriteString(separator(prev, m))
		}
		p.builder.WriteString(m.surface)
		prev = m
	}

	return p.builder.String(), nil
}

func toMorpheme(n mecab.Node) (morpheme, bool) {
	// RLength counts the leading whitespace, Length does not.
	spaced := n.Length() < n.RLength()

	features := strings.Split(n.Feature(), ",")
	feature := func(i int) string {
		if i < len(features) {
			return features[i]
		}
		return ""
	}

	return morpheme{
		surface:  n.Surface(),
		part:     feature(0),
		partType: feature(1),
		form:     feature(5),
	}, spaced
}

type rule struct {
	match func(prev, next morpheme) bool
	sep   string
}

// rules are evaluated in order; the first match wins and the fallback is a space.
var rules = []rule{
	// sentence-final particle ends the sentence unless another particle follows
	{func(prev, next morpheme) bool { return prev.partType == "終助詞" && next.part != "助詞" }, period},
	{func(prev, next morpheme) bool { return prev.partType == "終助詞" && next.partType == "終助詞" }, none},
	{func(prev, next morpheme) bool {
		return slices.Contains([]string{"動詞", "形容詞", "助詞"}, prev.part) &&
			prev.form == "基本形" &&
			prev.partType != "非自立" &&
			next.partType != "非自立" &&
			!slices.Contains([]string{"名詞", "助詞", "助動詞"}, next.part)
	}, period},
	{func(prev, next morpheme) bool { return prev.part == "フィラー" || next.part == "フィラー" }, comma},
	{func(prev, next morpheme) bool { return prev.part == "感動詞" }, comma},
	// e.g. まあ年一回二回ぐらいがちょうどいいのでは[ ]ちょっと２年たったって思わなかったでしょ
	{func(prev, next morpheme) bool { return prev.partType == "係助詞" && next.partType == "助詞類接続" }, space},
	// e.g. コラボウィークっていうのをやってて[、]その中の何か三日目か四日目
	{func(prev, next morpheme) bool { return next.part == "連体詞" }, comma},
	{func(prev, next morpheme) bool {
		return prev.part == "名詞" && (next.part == "動詞" || next.part == "名詞")
	}, none},
	{func(prev, next morpheme) bool { return prev.part == "副詞" && next.part == "名詞" }, none},
	{func(prev, next morpheme) bool { return prev.part == "動詞" && next.part == "動詞" }, none},
	{func(prev, next morpheme) bool {
		return slices.Contains([]string{"形容詞", "接頭詞", "記号"}, prev.part)
	}, none},
	{func(prev, next morpheme) bool { return next.part == "名詞" && next.partType == "接尾" }, none},
	{func(prev, next morpheme) bool {
		return slices.Contains([]string{"動詞", "助詞", "助動詞", "記号"}, next.part)
	}, none},
	{func(prev, next morpheme) bool {
		return slices.Contains([]string{"非自立", "助詞類接続", "連体化", "係助詞"}, prev.partType)
	}, none},
	{func(prev, next morpheme) bool {
		return prev.partType == "接続助詞" && !slices.Contains([]string{"形容詞", "副詞", "名詞"}, next.part)
	}, none},
	{func(prev, next morpheme) bool { return next.partType == "非自立" }, none},
}

func separator(prev, next morpheme) string {
	for _, r := range rules {
		if r.match(prev, next) {
			return r.sep
		}
	}
	return space
}
