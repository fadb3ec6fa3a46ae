package session

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/JamesBMiddleton/nutritrack/internal/utils"
	"github.com/JamesBMiddleton/nutritrack/pkg/diary"
	"github.com/JamesBMiddleton/nutritrack/pkg/foods"
	"github.com/JamesBMiddleton/nutritrack/pkg/rdi"
	"github.com/JamesBMiddleton/nutritrack/pkg/search"
)

var (
	ErrNoSelection = errors.New("no food selected")
	ErrBadRow      = errors.New("no such result row")
)

type Screen int

const (
	ScreenSearch Screen = iota
	ScreenTable
	ScreenVisual
	ScreenDiary
)

func (s Screen) String() string {
	switch s {
	case ScreenTable:
		return "table"
	case ScreenVisual:
		return "visual"
	case ScreenDiary:
		return "diary"
	}
	return "search"
}

// Settings are the values a session starts with.
type Settings struct {
	Grams  int
	Weight int
	Sex    rdi.Sex
}

func DefaultSettings() Settings {
	return Settings{Grams: 100, Weight: 70, Sex: rdi.Male}
}

// View is a chart ready to render.
type View struct {
	Title  string     `json:"title" yaml:"title"`
	Report rdi.Report `json:"report" yaml:"report"`
}

// Session is one user's interaction with the tables: the current screen,
// search results, selection, serving settings and diary.
type Session struct {
	ID string

	foods *foods.Table
	ref   *rdi.Table
	diary *diary.Diary
	log   *logrus.Entry

	screen   Screen
	results  []search.Result
	selected int
	hasFood  bool

	grams  int
	weight int
	sex    rdi.Sex
}

func New(table *foods.Table, ref *rdi.Table, settings Settings) *Session {
	id := uuid.NewString()
	return &Session{
		ID:     id,
		foods:  table,
		ref:    ref,
		diary:  diary.New(),
		log:    utils.Log.WithField("session", id),
		grams:  settings.Grams,
		weight: settings.Weight,
		sex:    settings.Sex,
	}
}

func (s *Session) Screen() Screen { return s.screen }
func (s *Session) Grams() int     { return s.grams }
func (s *Session) Weight() int    { return s.weight }
func (s *Session) Sex() rdi.Sex   { return s.sex }

func (s *Session) Diary() *diary.Diary { return s.diary }

func (s *Session) Results() []search.Result {
	return s.results
}

// Search runs query and moves to the results table.
func (s *Session) Search(query string) []search.Result {
	s.results = search.Search(query, s.foods)
	s.screen = ScreenTable
	s.log.WithFields(logrus.Fields{"query": query, "results": len(s.results)}).Debug("search")
	return s.results
}

// Select picks a row of the last results and shows its chart.
func (s *Session) Select(row int) (View, error) {
	if row < 0 || row >= len(s.results) {
		return View{}, fmt.Errorf("%w: %d", ErrBadRow, row)
	}
	s.selected = s.results[row].ID
	s.hasFood = true
	s.screen = ScreenVisual
	return s.Chart()
}

// SelectFood selects a food by table id, bypassing search.
func (s *Session) SelectFood(id int) (View, error) {
	if _, err := s.foods.Food(id); err != nil {
		return View{}, err
	}
	s.selected = id
	s.hasFood = true
	s.screen = ScreenVisual
	return s.Chart()
}

// SetGrams parses a whole number of grams. Empty text keeps the current
// value; invalid text is logged and ignored.
func (s *Session) SetGrams(text string) {
	if v, ok := s.parseWhole(text, "grams"); ok {
		s.grams = v
	}
}

// SetWeight parses a whole number of kilograms, with the same policy as SetGrams.
func (s *Session) SetWeight(text string) {
	if v, ok := s.parseWhole(text, "weight"); ok {
		s.weight = v
	}
}

func (s *Session) SetSex(sex rdi.Sex) {
	s.sex = sex
}

func (s *Session) parseWhole(text, field string) (int, bool) {
	text = strings.TrimSpace(text)
	if text == "" {
		return 0, false
	}
	v, err := strconv.Atoi(text)
	if err != nil {
		s.log.WithField(field, text).Warn("ignoring non-integer input")
		return 0, false
	}
	return v, true
}

// Add puts the selected food, at the current grams, into the diary. Without a
// selection it does nothing and returns false.
func (s *Session) Add() bool {
	if !s.hasFood {
		s.log.Warn("add ignored: no food selected")
		return false
	}
	f, err := s.foods.Food(s.selected)
	if err != nil {
		s.log.WithError(err).Warn("add ignored")
		return false
	}
	s.diary.AddFood(f, float64(s.grams))
	s.log.WithFields(logrus.Fields{"food": f.Description, "grams": s.grams}).Info("added to diary")
	return true
}

// ShowDiary moves to the diary chart.
func (s *Session) ShowDiary() View {
	s.screen = ScreenDiary
	return s.diaryView()
}

// Back steps from the chart to the results, and from the results to search.
func (s *Session) Back() Screen {
	switch s.screen {
	case ScreenTable:
		s.screen = ScreenSearch
	case ScreenVisual:
		s.screen = ScreenTable
	}
	return s.screen
}

// Chart computes the view for the current screen with the current settings.
func (s *Session) Chart() (View, error) {
	switch s.screen {
	case ScreenDiary:
		return s.diaryView(), nil
	case ScreenVisual:
		resolved, err := s.foods.Resolve(s.selected, float64(s.grams))
		if err != nil {
			return View{}, err
		}
		return s.view(resolved), nil
	}
	return View{}, ErrNoSelection
}

func (s *Session) diaryView() View {
	return s.view(foods.DiaryTotal(s.diary.Vector()))
}

func (s *Session) view(r foods.Resolved) View {
	return View{
		Title:  r.Name,
		Report: rdi.Compute(r.Amounts, s.ref, s.sex, float64(s.weight)),
	}
}
