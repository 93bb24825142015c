package importer

// Kind says how a CSV cell is converted before it is bound.
type Kind int

const (
	Text Kind = iota
	Int
	Float
	// List cells hold Python/JSON list literals and are stored as "a, b".
	List
)

// Column names both the CSV header and the table column.
type Column struct {
	Name string
	Kind Kind
}

// Table describes one catalog CSV export and its destination table.
type Table struct {
	Name    string
	File    string
	Key     string
	Columns []Column
}

var Anime = Table{
	Name: "details",
	File: "details.csv",
	Key:  "mal_id",
	Columns: []Column{
		{"mal_id", Int},
		{"title", Text},
		{"title_japanese", Text},
		{"title_english", Text},
		{"type", Text},
		{"source", Text},
		{"episodes", Int},
		{"status", Text},
		{"aired_from", Text},
		{"aired_to", Text},
		{"duration", Text},
		{"rating", Text},
		{"score", Float},
		{"scored_by", Int},
		{"rank", Int},
		{"popularity", Int},
		{"members", Int},
		{"favorites", Int},
		{"synopsis", Text},
		{"background", Text},
		{"premiered", Text},
		{"broadcast", Text},
		{"studios", List},
		{"genres", List},
		{"url", Text},
		{"image_url", Text},
		{"trailer_url", Text},
	},
}

var Characters = Table{
	Name: "characters",
	File: "characters.csv",
	Key:  "character_id",
	Columns: []Column{
		{"character_id", Int},
		{"name", Text},
		{"name_kanji", Text},
		{"url", Text},
		{"image_url", Text},
		{"about", Text},
		{"favorites", Int},
	},
}

var People = Table{
	Name: "person_details",
	File: "person_details.csv",
	Key:  "person_id",
	Columns: []Column{
		{"person_id", Int},
		{"name", Text},
		{"given_name", Text},
		{"family_name", Text},
		{"birthday", Text},
		{"url", Text},
		{"image_url", Text},
		{"website_url", Text},
		{"favorites", Int},
		{"about", Text},
	},
}

// Tables lists every importable table in import order.
var Tables = []Table{Anime, Characters, People}

func (t Table) columnNames() []string {
	names := make([]string, len(t.Columns))
	for i, c := range t.Columns {
		names[i] = c.Name
	}
	return names
}
