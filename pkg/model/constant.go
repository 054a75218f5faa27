package model

import (
	"errors"
	"fmt"
	"strings"
)

const (
	FragmentCount  = 9
	SequenceLength = 12
	PointsPerMatch = 10
	MaxScore       = FragmentCount * PointsPerMatch
)

// Nucleotide alphabet used for fragment sequences.
const Bases = "ATGC"

type Category int

const (
	CategoryBlue Category = iota
	CategoryYellow
	CategoryRed
	CategoryGreen
	NumCategories int = iota
)

var ErrUnknownCategory = errors.New("unknown category")

// Display order of bins and library entries.
var AllCategories = [NumCategories]Category{
	CategoryBlue,
	CategoryYellow,
	CategoryRed,
	CategoryGreen,
}

func (c Category) String() string {
	switch c {
	case CategoryBlue:
		return "blue"
	case CategoryYellow:
		return "yellow"
	case CategoryRed:
		return "red"
	case CategoryGreen:
		return "green"
	default:
		return "unknown"
	}
}

func (c Category) Valid() bool {
	return c >= 0 && int(c) < NumCategories
}

func ParseCategory(name string) (Category, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "blue":
		return CategoryBlue, nil
	case "yellow":
		return CategoryYellow, nil
	case "red":
		return CategoryRed, nil
	case "green":
		return CategoryGreen, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownCategory, name)
	}
}

// Organism is the reference record shown in the library panel for a category.
type Organism struct {
	Category    Category `json:"-"`
	Color       string   `json:"color"`
	Name        string   `json:"name"`
	Type        string   `json:"type"`
	Description string   `json:"description"`
	Habitat     string   `json:"habitat"`
	Function    string   `json:"function"`
}

var library = [NumCategories]Organism{
	CategoryBlue: {
		Category:    CategoryBlue,
		Color:       "blue",
		Name:        "Lactobacillus acidophilus",
		Type:        "Beneficial bacterium",
		Description: "Probiotic essential for gut health",
		Habitat:     "Human gut, fermented foods",
		Function:    "Aids digestion and strengthens the immune system",
	},
	CategoryYellow: {
		Category:    CategoryYellow,
		Color:       "yellow",
		Name:        "Saccharomyces cerevisiae",
		Type:        "Fungus",
		Description: "Yeast used to make bread and beer",
		Habitat:     "Fruit, soil, fermented foods",
		Function:    "Alcoholic fermentation and CO2 production",
	},
	CategoryRed: {
		Category:    CategoryRed,
		Color:       "red",
		Name:        "Pathogenic Escherichia coli",
		Type:        "Pathogenic bacterium",
		Description: "Pathogenic strain that can cause infections",
		Habitat:     "Mammalian gut, contaminated water",
		Function:    "Can cause gastrointestinal disease",
	},
	CategoryGreen: {
		Category:    CategoryGreen,
		Color:       "green",
		Name:        "Methanobrevibacter smithii",
		Type:        "Archaea",
		Description: "Methane-producing microorganism",
		Habitat:     "Human gut, anaerobic environments",
		Function:    "Produces methane from hydrogen and CO2",
	},
}

// Library returns the reference records in display order.
func Library() []Organism {
	out := make([]Organism, 0, NumCategories)
	for _, c := range AllCategories {
		out = append(out, library[c])
	}
	return out
}

// Info returns the reference record of c. Invalid categories yield a zero Organism.
func (c Category) Info() Organism {
	if !c.Valid() {
		return Organism{}
	}
	return library[c]
}

const AboutMetagenome = "Metagenomics is the study of the genetic material of entire " +
	"communities of microorganisms living in an environment. It analyses the genetic and " +
	"functional diversity of every microorganism present (bacteria, viruses, fungi and so on) " +
	"without culturing them in a laboratory. In this game you sort the DNA fragments found in " +
	"a metagenomic sample by the kind of organism they came from."
