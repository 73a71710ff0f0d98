package querybuilder

import (
	"reflect"
	"testing"
)

func TestSelect_WithConditionsAndPaging(t *testing.T) {
	query, args, err := Select("batter", "SUM(runs) AS total").
		From("deliveries").
		Where(Eq("is_wicket", false)).
		GroupBy("batter").
		OrderBy("total DESC", "batter ASC").
		Limit(5).
		Offset(10).
		ToSQL()
	if err != nil {
		t.Fatalf("build select: %v", err)
	}

	want := "SELECT batter, SUM(runs) AS total FROM deliveries WHERE is_wicket = $1 GROUP BY batter ORDER BY total DESC, batter ASC LIMIT 5 OFFSET 10"
	if query != want {
		t.Fatalf("unexpected query:\n got: %s\nwant: %s", query, want)
	}
	if !reflect.DeepEqual(args, []any{false}) {
		t.Fatalf("unexpected args: %v", args)
	}
}

func TestSelect_Join(t *testing.T) {
	query, args, err := Select("i.id").
		From("innings i").
		Join("matches m ON m.match_number = i.match_number").
		Where(Eq("m.match_date", "2023-04-01")).
		ToSQL()
	if err != nil {
		t.Fatalf("build select with join: %v", err)
	}

	want := "SELECT i.id FROM innings i JOIN matches m ON m.match_number = i.match_number WHERE m.match_date = $1"
	if query != want {
		t.Fatalf("unexpected query: %s", query)
	}
	if len(args) != 1 {
		t.Fatalf("expected 1 arg, got %v", args)
	}
}

func TestSelect_InWithNoValues(t *testing.T) {
	query, _, err := Select("id").From("teams").Where(In("name", nil)).ToSQL()
	if err != nil {
		t.Fatalf("build select: %v", err)
	}
	if query != "SELECT id FROM teams WHERE 1=0" {
		t.Fatalf("unexpected query: %s", query)
	}
}

func TestInsert_MultiRowWithSuffix(t *testing.T) {
	query, args, err := InsertInto("teams").
		Columns("name").
		Values("Team A").
		Values("Team B").
		Suffix("ON CONFLICT (name) DO NOTHING").
		ToSQL()
	if err != nil {
		t.Fatalf("build insert: %v", err)
	}

	want := "INSERT INTO teams (name) VALUES ($1), ($2) ON CONFLICT (name) DO NOTHING"
	if query != want {
		t.Fatalf("unexpected query: %s", query)
	}
	if !reflect.DeepEqual(args, []any{"Team A", "Team B"}) {
		t.Fatalf("unexpected args: %v", args)
	}
}

func TestInsert_RowLengthMismatch(t *testing.T) {
	_, _, err := InsertInto("teams").Columns("name").Values("Team A", "extra").ToSQL()
	if err == nil {
		t.Fatal("expected error for mismatched row length")
	}
}

func TestInsertModel(t *testing.T) {
	row := struct {
		Number int64  `db:"match_number"`
		City   string `db:"city"`
		Skip   string `db:"-"`
	}{Number: 1, City: "Mumbai", Skip: "x"}

	query, args, err := InsertModel("matches", row, "ON CONFLICT (match_number) DO NOTHING")
	if err != nil {
		t.Fatalf("insert model: %v", err)
	}

	want := "INSERT INTO matches (match_number, city) VALUES ($1, $2) ON CONFLICT (match_number) DO NOTHING"
	if query != want {
		t.Fatalf("unexpected query: %s", query)
	}
	if !reflect.DeepEqual(args, []any{int64(1), "Mumbai"}) {
		t.Fatalf("unexpected args: %v", args)
	}
}
