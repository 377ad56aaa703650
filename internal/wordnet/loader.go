package wordnet

import (
	"encoding/xml"
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/morikuni/failure/v2"
	"github.com/takatori/wnsim/internal/errors"
)

type xmlRelation struct {
	Target string  `xml:",chardata"`
	Type   *string `xml:"TYPE"`
	To     *string `xml:"TO"`
}

type xmlLiteral struct {
	Name      string        `xml:",chardata"`
	Sense     *string       `xml:"SENSE"`
	Origin    string        `xml:"ORIGIN"`
	Group     string        `xml:"GROUP"`
	Relations []xmlRelation `xml:"SR"`
}

type xmlSynSet struct {
	ID        string        `xml:"ID"`
	Literals  []xmlLiteral  `xml:"SYNONYM>LITERAL"`
	Pos       string        `xml:"POS"`
	Def       string        `xml:"DEF"`
	Example   string        `xml:"EXAMPLE"`
	Bcs       string        `xml:"BCS"`
	Note      string        `xml:"SNOTE"`
	Wiki      string        `xml:"WIKI"`
	Relations []xmlRelation `xml:"SR"`
	ILRs      []xmlRelation `xml:"ILR"`
}

// LoadFile reads a resource XML file.
func LoadFile(path string) (*WordNet, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, failure.Translate(
			err,
			errors.ErrNotFound,
			failure.Field(failure.Message("failed to open wordnet file")),
			failure.Context{
				"path": path,
			},
		)
	}
	defer f.Close()

	return Load(f)
}

// Load streams SYNSET elements from r. Malformed relations are skipped with a
// warning; a synset without an ID is skipped entirely.
func Load(r io.Reader) (*WordNet, error) {
	wn := New()
	decoder := xml.NewDecoder(r)
	for {
		token, err := decoder.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, failure.Translate(
				err,
				errors.ErrInvalidArgument,
				failure.Field(failure.Message("failed to read wordnet xml")),
			)
		}
		start, ok := token.(xml.StartElement)
		if !ok || start.Name.Local != "SYNSET" {
			continue
		}
		var node xmlSynSet
		if err := decoder.DecodeElement(&node, &start); err != nil {
			return nil, failure.Translate(
				err,
				errors.ErrInvalidArgument,
				failure.Field(failure.Message("failed to decode synset")),
				failure.Context{
					"offset": strconv.FormatInt(decoder.InputOffset(), 10),
				},
			)
		}
		if s := node.toSynSet(); s != nil {
			wn.AddSynSet(s)
		}
	}
	slog.Debug("wordnet loaded", "synsets", wn.Size(), "literals", len(wn.literals))
	return wn, nil
}

func (n xmlSynSet) toSynSet() *SynSet {
	id := strings.TrimSpace(n.ID)
	if id == "" {
		slog.Warn("synset without id skipped")
		return nil
	}
	s := NewSynSet(id)
	if n.Def != "" {
		s.SetDefinition(n.Def)
	}
	s.Example = n.Example
	s.Note = n.Note
	s.Wiki = n.Wiki
	if n.Bcs != "" {
		if bcs, err := strconv.Atoi(strings.TrimSpace(n.Bcs)); err == nil {
			s.Bcs = bcs
		}
	}
	if pos := strings.TrimSpace(n.Pos); pos != "" {
		p, known := PosFromLetter(pos[0])
		if !known {
			slog.Warn("pos is not defined for synset", "pos", pos, "synset", id)
		}
		s.Pos = p
	}

	for _, l := range n.Literals {
		if l.Sense == nil {
			slog.Warn("literal does not include sense node", "literal", strings.TrimSpace(l.Name), "synset", id)
			continue
		}
		sense, _ := strconv.Atoi(strings.TrimSpace(*l.Sense))
		literal := &Literal{
			Name:   strings.TrimSpace(l.Name),
			Sense:  sense,
			Origin: l.Origin,
		}
		if l.Group != "" {
			literal.GroupNo, _ = strconv.Atoi(strings.TrimSpace(l.Group))
		}
		for _, r := range l.Relations {
			if rel, ok := r.semantic(id); ok {
				literal.Relations = append(literal.Relations, rel)
			}
		}
		s.AddLiteral(literal)
	}

	for _, r := range n.Relations {
		if rel, ok := r.semantic(id); ok {
			s.AddRelation(rel)
		}
	}
	for _, r := range n.ILRs {
		if r.Type == nil {
			slog.Warn("ILR node does not contain type value", "synset", id)
			continue
		}
		s.AddRelation(NewInterlingualRelation(strings.TrimSpace(r.Target), InterlingualTag(strings.TrimSpace(*r.Type))))
	}
	return s
}

func (r xmlRelation) semantic(synSetID string) (Relation, bool) {
	if r.Type == nil {
		slog.Warn("SR node does not contain type value", "synset", synSetID, "target", strings.TrimSpace(r.Target))
		return Relation{}, false
	}
	rel := NewSemanticRelation(strings.TrimSpace(r.Target), SemanticTag(strings.TrimSpace(*r.Type)))
	if r.To != nil {
		rel.ToIndex, _ = strconv.Atoi(strings.TrimSpace(*r.To))
	}
	return rel, true
}
