package session

import (
	"errors"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"

	"github.com/JamesBMiddleton/nutritrack/internal/utils"
	"github.com/JamesBMiddleton/nutritrack/pkg/foods"
	"github.com/JamesBMiddleton/nutritrack/pkg/nutrients"
	"github.com/JamesBMiddleton/nutritrack/pkg/rdi"
)

func testTable() *foods.Table {
	egg := nutrients.Zero()
	egg[0] = nutrients.Known(143)
	egg[14] = nutrients.Known(12.6)
	egg[5] = nutrients.Unknown

	milk := nutrients.Zero()
	milk[0] = nutrients.Known(61)

	return foods.NewTable([]foods.Food{
		{Description: "Milk, whole", Per100g: milk, Completeness: 50},
		{Description: "Egg, whole, raw", Per100g: egg, Completeness: 90},
	})
}

func newSession() *Session {
	return New(testTable(), rdi.Default(), DefaultSettings())
}

func TestNewSession(t *testing.T) {
	s := newSession()
	if s.ID == "" {
		t.Error("session id should be set")
	}
	if s.Screen() != ScreenSearch {
		t.Errorf("screen = %s, want search", s.Screen())
	}
	if s.Grams() != 100 || s.Weight() != 70 || s.Sex() != rdi.Male {
		t.Errorf("unexpected defaults: %d %d %s", s.Grams(), s.Weight(), s.Sex())
	}
	if other := newSession(); other.ID == s.ID || other.Diary() == s.Diary() {
		t.Error("sessions must not share ids or diaries")
	}
}

func TestNavigation(t *testing.T) {
	s := newSession()

	if got := s.Back(); got != ScreenSearch {
		t.Errorf("back from search = %s", got)
	}

	results := s.Search("whole")
	if len(results) != 2 || results[0].Description != "Egg, whole, raw" {
		t.Fatalf("results = %+v", results)
	}
	if s.Screen() != ScreenTable {
		t.Fatalf("screen = %s, want table", s.Screen())
	}

	view, err := s.Select(0)
	if err != nil {
		t.Fatal(err)
	}
	if view.Title != "Egg, whole, raw" || s.Screen() != ScreenVisual {
		t.Fatalf("view %q on %s", view.Title, s.Screen())
	}

	if got := s.Back(); got != ScreenTable {
		t.Errorf("back from visual = %s, want table", got)
	}
	if got := s.Back(); got != ScreenSearch {
		t.Errorf("back from table = %s, want search", got)
	}

	s.ShowDiary()
	if got := s.Back(); got != ScreenDiary {
		t.Errorf("back from diary = %s, want diary", got)
	}
}

func TestSelectBadRow(t *testing.T) {
	s := newSession()
	s.Search("Egg")
	if _, err := s.Select(5); !errors.Is(err, ErrBadRow) {
		t.Fatalf("err = %v, want ErrBadRow", err)
	}
	if s.Screen() != ScreenTable {
		t.Errorf("screen changed on bad select: %s", s.Screen())
	}
}

func TestSelectFood(t *testing.T) {
	s := newSession()
	s.SetGrams("200")
	view, err := s.SelectFood(1)
	if err != nil {
		t.Fatal(err)
	}
	if view.Report.Amounts[0] != nutrients.Known(286) {
		t.Errorf("energy = %+v, want 286", view.Report.Amounts[0])
	}
	if view.Report.Labels[5] != rdi.LabelNoData {
		t.Errorf("slot 5 label = %q, want No data", view.Report.Labels[5])
	}

	if _, err := s.SelectFood(9); !errors.Is(err, foods.ErrFoodNotFound) {
		t.Errorf("err = %v, want ErrFoodNotFound", err)
	}
}

func TestSetGramsAndWeightParsing(t *testing.T) {
	hook := test.NewLocal(utils.Log)
	defer hook.Reset()

	s := newSession()
	s.SetGrams("250")
	s.SetWeight(" 82 ")
	if s.Grams() != 250 || s.Weight() != 82 {
		t.Fatalf("grams/weight = %d/%d", s.Grams(), s.Weight())
	}

	s.SetGrams("")
	if s.Grams() != 250 {
		t.Errorf("empty input changed grams to %d", s.Grams())
	}
	if len(hook.AllEntries()) != 0 {
		t.Errorf("empty input should not log")
	}

	s.SetGrams("lots")
	s.SetWeight("12.5")
	if s.Grams() != 250 || s.Weight() != 82 {
		t.Errorf("invalid input changed values: %d/%d", s.Grams(), s.Weight())
	}
	if len(hook.AllEntries()) != 2 || hook.LastEntry().Level != logrus.WarnLevel {
		t.Errorf("expected two warnings, got %d", len(hook.AllEntries()))
	}
}

func TestAddWithoutSelection(t *testing.T) {
	hook := test.NewLocal(utils.Log)
	defer hook.Reset()

	s := newSession()
	if s.Add() {
		t.Fatal("Add without selection should be a no-op")
	}
	if s.Diary().Vector() != nutrients.Zero() {
		t.Error("diary changed")
	}
	if hook.LastEntry() == nil || hook.LastEntry().Level != logrus.WarnLevel {
		t.Error("expected a warning")
	}
}

func TestAddAndDiaryChart(t *testing.T) {
	s := newSession()
	s.Search("Egg")
	if _, err := s.Select(0); err != nil {
		t.Fatal(err)
	}
	s.SetGrams("50")
	if !s.Add() {
		t.Fatal("Add failed")
	}

	view := s.ShowDiary()
	if view.Title != foods.DiaryTitle {
		t.Errorf("title = %q", view.Title)
	}
	if view.Report.Amounts[0] != nutrients.Known(71.5) {
		t.Errorf("diary energy = %+v, want 71.5", view.Report.Amounts[0])
	}
	// Unknown values were added as zero, so the diary has data everywhere.
	if view.Report.Labels[5] == rdi.LabelNoData {
		t.Errorf("diary slot 5 should not be No data")
	}

	again, err := s.Chart()
	if err != nil || again.Title != foods.DiaryTitle {
		t.Errorf("Chart on diary screen = %q, %v", again.Title, err)
	}
}

func TestChartRespectsSexAndWeight(t *testing.T) {
	s := newSession()
	if _, err := s.Chart(); !errors.Is(err, ErrNoSelection) {
		t.Fatalf("err = %v, want ErrNoSelection", err)
	}

	if _, err := s.SelectFood(1); err != nil {
		t.Fatal(err)
	}
	s.SetSex(rdi.Female)
	s.SetWeight("63")
	view, err := s.Chart()
	if err != nil {
		t.Fatal(err)
	}
	if view.Report.Targets[0] != nutrients.Known(2000) {
		t.Errorf("female energy target = %+v", view.Report.Targets[0])
	}
	if got := view.Report.Targets[14].Value; got < 50.39 || got > 50.41 {
		t.Errorf("protein target = %v, want 50.4", got)
	}
}
