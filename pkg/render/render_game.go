package render

import (
	"html/template"
	"io"

	"github.com/yumyai/metagame/pkg/model"
)

// FragmentCard is one fragment as drawn on the page.
type FragmentCard struct {
	ID       int
	Color    string
	Sequence string
	Correct  bool
}

// BinPanel is one drop target with the fragments placed in it.
type BinPanel struct {
	Color     string
	Organism  model.Organism
	Fragments []FragmentCard
}

type GamePageData struct {
	Round       int
	Phase       model.Phase
	Unsorted    []FragmentCard
	Bins        []BinPanel
	Library     []model.Organism
	ShowLibrary bool
	Completed   bool
	Score       int
	MaxScore    int
	BestScore   int
	About       string
}

func NewGamePageData(g model.Game, best int) GamePageData {
	data := GamePageData{
		Round:       g.Round,
		Phase:       g.Phase(),
		Unsorted:    make([]FragmentCard, 0, len(g.Board.Unsorted)),
		Bins:        make([]BinPanel, 0, model.NumCategories),
		Library:     model.Library(),
		ShowLibrary: g.ShowLibrary,
		Completed:   g.Completed,
		Score:       g.Score,
		MaxScore:    model.MaxScore,
		BestScore:   best,
		About:       model.AboutMetagenome,
	}

	for _, f := range g.Board.Unsorted {
		data.Unsorted = append(data.Unsorted, FragmentCard{ID: f.ID, Color: f.Category.String(), Sequence: f.Sequence})
	}

	for _, c := range model.AllCategories {
		panel := BinPanel{Color: c.String(), Organism: c.Info()}
		for _, f := range g.Board.Bins[c] {
			panel.Fragments = append(panel.Fragments, FragmentCard{
				ID:       f.ID,
				Color:    f.Category.String(),
				Sequence: f.Sequence,
				Correct:  model.VerdictFor(f, c) == model.VerdictCorrect,
			})
		}
		data.Bins = append(data.Bins, panel)
	}

	return data
}

var gamePageTemplate *template.Template

// init initializes the templates used for rendering the HTML page.
func init() {
	mainTmpl := `
	<!DOCTYPE html>
	<html>
	<head>
		<meta charset="utf-8">
		<link href="/static/style.css" rel="stylesheet"></link>
		<script src="/static/game.js" defer></script>
		<title>Metagenome Game</title>
	</head>
	<body>
		<header class="app-header">
			<h1 class="app-name">Metagenome Game</h1>
			<p class="app-description">Sort the DNA fragments by the kind of microorganism they came from</p>
			<div class="app-actions">
				<form method="post" action="/game/new"><button type="submit">New game</button></form>
				<form method="post" action="/game/library"><button type="submit" class="outline">Library</button></form>
			</div>
			{{ if .Completed }}
			<p class="banner">Congratulations! Score: {{ .Score }}/{{ .MaxScore }}</p>
			{{ end }}
			{{ if .BestScore }}
			<p class="best">Best this visit: {{ .BestScore }}/{{ .MaxScore }}</p>
			{{ end }}
		</header>
		{{ if .ShowLibrary }}{{ template "library" . }}{{ end }}
		{{ template "pool" . }}
		{{ template "bins" . }}
		<section class="card">
			<h2>About metagenomics</h2>
			<p class="about">{{ .About }}</p>
		</section>
	</body>
	</html>`

	libraryTmpl := `
	{{ define "library" }}
	<section class="card library">
		<h2>Reference library</h2>
		<p class="subtitle">Meet the microorganisms you are sorting</p>
		<div class="grid">
		{{ range .Library }}
			<div class="organism">
				<span class="swatch {{ .Color }}"></span>
				<span class="badge">{{ .Type }}</span>
				<h4>{{ .Name }}</h4>
				<p>{{ .Description }}</p>
				<p><strong>Habitat:</strong> {{ .Habitat }}</p>
				<p><strong>Function:</strong> {{ .Function }}</p>
			</div>
		{{ end }}
		</div>
	</section>
	{{ end }}`

	poolTmpl := `
	{{ define "pool" }}
	<section class="card">
		<h2>DNA fragments to sort</h2>
		<p class="subtitle">Drag the fragments into the matching areas below</p>
		<div class="pool">
		{{ range .Unsorted }}
			<div class="fragment {{ .Color }}" draggable="true" data-fragment-id="{{ .ID }}">
				<div class="sequence">{{ .Sequence }}</div>
				<div class="fragment-id">ID: {{ .ID }}</div>
			</div>
		{{ end }}
		</div>
	</section>
	{{ end }}`

	binsTmpl := `
	{{ define "bins" }}
	<div class="grid bins">
	{{ range .Bins }}
		{{ $bin := .Color }}
		<section class="card bin">
			<div class="bin-header">
				<span class="swatch {{ .Color }}"></span>
				<h3>{{ .Organism.Type }}</h3>
			</div>
			<p class="subtitle">{{ .Organism.Name }}</p>
			<div class="dropzone" data-bin="{{ .Color }}">
			{{ range .Fragments }}
				<form method="post" action="/game/return">
					<input type="hidden" name="fragment_id" value="{{ .ID }}">
					<input type="hidden" name="bin" value="{{ $bin }}">
					<button type="submit" class="fragment placed {{ .Color }}" title="Return to the pool">
						<span class="sequence">{{ .Sequence }}</span>
						<span class="fragment-id">ID: {{ .ID }}</span>
						{{ if .Correct }}<span class="verdict correct">&#10003; Correct</span>
						{{ else }}<span class="verdict incorrect">&#10007; Incorrect</span>{{ end }}
					</button>
				</form>
			{{ end }}
			</div>
		</section>
	{{ end }}
	</div>
	{{ end }}`

	gamePageTemplate = template.Must(template.New("game_page").Parse(mainTmpl))
	gamePageTemplate = template.Must(gamePageTemplate.Parse(libraryTmpl))
	gamePageTemplate = template.Must(gamePageTemplate.Parse(poolTmpl))
	gamePageTemplate = template.Must(gamePageTemplate.Parse(binsTmpl))
}

// Function to render the game page
func RenderGamePage(w io.Writer, data GamePageData) error {
	return gamePageTemplate.Execute(w, data)
}
