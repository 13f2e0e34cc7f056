package store

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/stitts-dev/caddie/internal/models"
)

type StoreTestSuite struct {
	suite.Suite
	newStore func(t *testing.T) Store
	store    Store
	ctx      context.Context
}

func (s *StoreTestSuite) SetupTest() {
	s.store = s.newStore(s.T())
	s.ctx = context.Background()
}

func newSQLiteStore(t *testing.T) Store {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { sqlDB.Close() })

	st := NewGormStore(db)
	require.NoError(t, st.Migrate())
	return st
}

func TestMemoryStore(t *testing.T) {
	suite.Run(t, &StoreTestSuite{newStore: func(*testing.T) Store { return NewMemoryStore() }})
}

func TestGormStore(t *testing.T) {
	suite.Run(t, &StoreTestSuite{newStore: newSQLiteStore})
}

func change(f float64) *float64 { return &f }

func sampleCourse() *models.Course {
	return &models.Course{
		ID:            "lakeside",
		Name:          "Lakeside Municipal",
		Aliases:       []string{"Lakeside Muni"},
		ElevationFeet: 650,
		Latitude:      43.07,
		Longitude:     -89.4,
		Holes: []models.Hole{
			{
				Number: 2, Par: 3, HandicapIndex: 17, DistanceToPinYards: 152,
				FairwayType: models.FairwayStandard, ElevationChangeFeet: change(-12),
				Hazards: []models.Hazard{
					{Type: models.HazardWater, Location: models.DirectionLeft, DistanceFromTeeYards: 150},
					{Type: models.HazardBunker, Location: models.DirectionRight, DistanceFromTeeYards: 160},
				},
			},
			{Number: 1, Par: 4, HandicapIndex: 5, DistanceToPinYards: 380, ShotBearingDegrees: 90, FairwayType: models.FairwayStandard},
		},
	}
}

func (s *StoreTestSuite) TestCourseRoundTrip() {
	s.Require().NoError(s.store.SaveCourse(s.ctx, sampleCourse()))

	c, err := s.store.GetCourse(s.ctx, "lakeside")
	s.Require().NoError(err)
	s.Equal("Lakeside Municipal", c.Name)
	s.Equal([]string{"Lakeside Muni"}, c.Aliases)
	s.Require().Len(c.Holes, 2)
	s.Equal(1, c.Holes[0].Number)
	s.Equal("lakeside-1", c.Holes[0].ID)

	h := c.Holes[1]
	s.Equal(650.0, h.CourseElevationFeet)
	s.Require().NotNil(h.ElevationChangeFeet)
	s.Equal(-12.0, *h.ElevationChangeFeet)
	s.Require().Len(h.Hazards, 2)
	s.Equal(models.HazardWater, h.Hazards[0].Type)
	s.Equal(models.DirectionRight, h.Hazards[1].Location)
}

func (s *StoreTestSuite) TestSaveCourseReplacesHoles() {
	s.Require().NoError(s.store.SaveCourse(s.ctx, sampleCourse()))

	updated := sampleCourse()
	updated.Holes = updated.Holes[:1]
	updated.Holes[0].Hazards = updated.Holes[0].Hazards[:1]
	s.Require().NoError(s.store.SaveCourse(s.ctx, updated))

	c, err := s.store.GetCourse(s.ctx, "lakeside")
	s.Require().NoError(err)
	s.Require().Len(c.Holes, 1)
	s.Len(c.Holes[0].Hazards, 1)

	_, err = s.store.GetHole(s.ctx, "lakeside-1")
	s.True(errors.Is(err, ErrHoleNotFound))
}

func (s *StoreTestSuite) TestReturnedCoursesAreCopies() {
	s.Require().NoError(s.store.SaveCourse(s.ctx, sampleCourse()))

	c, err := s.store.GetCourse(s.ctx, "lakeside")
	s.Require().NoError(err)
	c.Holes[1].Hazards[0].Type = models.HazardTrees

	again, err := s.store.GetCourse(s.ctx, "lakeside")
	s.Require().NoError(err)
	s.Equal(models.HazardWater, again.Holes[1].Hazards[0].Type)
}

func (s *StoreTestSuite) TestSearchCourses() {
	s.Require().NoError(s.store.SaveCourse(s.ctx, sampleCourse()))
	s.Require().NoError(s.store.SaveCourse(s.ctx, &models.Course{ID: "pines", Name: "Whispering Pines"}))

	byName, err := s.store.SearchCourses(s.ctx, "PINES")
	s.Require().NoError(err)
	s.Require().Len(byName, 1)
	s.Equal("pines", byName[0].ID)

	byAlias, err := s.store.SearchCourses(s.ctx, "muni")
	s.Require().NoError(err)
	s.Require().Len(byAlias, 1)
	s.Equal("lakeside", byAlias[0].ID)

	none, err := s.store.SearchCourses(s.ctx, "augusta")
	s.Require().NoError(err)
	s.Empty(none)

	all, err := s.store.ListCourses(s.ctx)
	s.Require().NoError(err)
	s.Require().Len(all, 2)
	s.Equal("Lakeside Municipal", all[0].Name)
}

func (s *StoreTestSuite) TestGetHole() {
	s.Require().NoError(s.store.SaveCourse(s.ctx, sampleCourse()))

	h, err := s.store.GetHole(s.ctx, "lakeside-2")
	s.Require().NoError(err)
	s.Equal("lakeside", h.CourseID)
	s.Equal(650.0, h.CourseElevationFeet)
	s.Len(h.Hazards, 2)
}

func (s *StoreTestSuite) TestNotFound() {
	_, err := s.store.GetCourse(s.ctx, "nope")
	s.True(errors.Is(err, ErrCourseNotFound))
	s.True(errors.Is(err, ErrNotFound))

	_, err = s.store.GetHole(s.ctx, "nope-1")
	s.True(errors.Is(err, ErrHoleNotFound))

	_, err = s.store.GetPlayerBaseline(s.ctx, "ghost")
	s.True(errors.Is(err, ErrPlayerNotFound))
	s.False(errors.Is(err, ErrHoleNotFound))

	_, err = s.store.GetWeather(s.ctx, "w-1")
	s.True(errors.Is(err, ErrWeatherNotFound))

	_, err = s.store.LatestWeather(s.ctx, "lakeside")
	s.True(errors.Is(err, ErrWeatherNotFound))
}

func (s *StoreTestSuite) TestReplacePlayerBaseline() {
	loft := 34.0
	first := &models.PlayerBaseline{PlayerID: "p1", PlayerName: "Sam", Clubs: []models.ClubDistance{
		{Club: models.ClubIron7, CarryYards: 145, TotalYards: 152, DispersionYards: 9, Method: models.MeasuredRangefinder, LoftDegrees: &loft},
		{Club: models.ClubIron8, CarryYards: 135, TotalYards: 141, DispersionYards: 8, Method: models.MeasuredRangefinder},
	}}
	s.Require().NoError(s.store.ReplacePlayerBaseline(s.ctx, first))

	got, err := s.store.GetPlayerBaseline(s.ctx, "p1")
	s.Require().NoError(err)
	s.Require().Len(got.Clubs, 2)
	s.Equal(models.ClubIron7, got.Clubs[0].Club)
	s.Require().NotNil(got.Clubs[0].LoftDegrees)
	s.Equal(34.0, *got.Clubs[0].LoftDegrees)

	second := &models.PlayerBaseline{PlayerID: "p1", PlayerName: "Sam", Clubs: []models.ClubDistance{
		{Club: models.ClubDriver, CarryYards: 240, TotalYards: 265, DispersionYards: 20, Method: models.MeasuredLaunchMonitor},
	}}
	s.Require().NoError(s.store.ReplacePlayerBaseline(s.ctx, second))

	got, err = s.store.GetPlayerBaseline(s.ctx, "p1")
	s.Require().NoError(err)
	s.Require().Len(got.Clubs, 1)
	s.Equal(models.ClubDriver, got.Clubs[0].Club)
}

func (s *StoreTestSuite) TestWeather() {
	base := time.Date(2026, 6, 1, 14, 0, 0, 0, time.UTC)
	older := &models.WeatherSnapshot{ID: "w-1", CourseID: "lakeside", ObservedAt: base, TemperatureF: 61,
		WindSpeedMPH: 8, WindDirection: models.CompassNW, Ground: models.GroundDry}
	newer := &models.WeatherSnapshot{ID: "w-2", CourseID: "lakeside", ObservedAt: base.Add(time.Hour), TemperatureF: 66,
		WindSpeedMPH: 12, WindDirection: models.CompassW, Rain: true, Ground: models.GroundWet}
	other := &models.WeatherSnapshot{ID: "w-3", CourseID: "pines", ObservedAt: base.Add(2 * time.Hour), TemperatureF: 80}

	for _, w := range []*models.WeatherSnapshot{older, newer, other} {
		s.Require().NoError(s.store.SaveWeather(s.ctx, w, json.RawMessage(`{"source":"test"}`)))
	}

	got, err := s.store.GetWeather(s.ctx, "w-1")
	s.Require().NoError(err)
	s.Equal(models.CompassNW, got.WindDirection)
	s.True(got.ObservedAt.Equal(base))

	latest, err := s.store.LatestWeather(s.ctx, "lakeside")
	s.Require().NoError(err)
	s.Equal("w-2", latest.ID)
	s.True(latest.Rain)
	s.Equal(models.GroundWet, latest.Ground)
}

func (s *StoreTestSuite) TestLatestWeatherBreaksTiesByID() {
	at := time.Date(2026, 6, 2, 9, 0, 0, 0, time.UTC)
	for _, id := range []string{"w-b", "w-d", "w-a", "w-c"} {
		w := &models.WeatherSnapshot{ID: id, CourseID: "ridge", ObservedAt: at, TemperatureF: 70, Ground: models.GroundDry}
		s.Require().NoError(s.store.SaveWeather(s.ctx, w, json.RawMessage(`{}`)))
	}

	for i := 0; i < 20; i++ {
		latest, err := s.store.LatestWeather(s.ctx, "ridge")
		s.Require().NoError(err)
		s.Equal("w-d", latest.ID)
	}
}

func TestGormStoreKeepsRawPayload(t *testing.T) {
	st := newSQLiteStore(t).(*GormStore)
	ctx := context.Background()

	w := &models.WeatherSnapshot{ID: "w-raw", CourseID: "c", ObservedAt: time.Now().UTC()}
	require.NoError(t, st.SaveWeather(ctx, w, json.RawMessage(`{"main":{"temp":71.2}}`)))

	raw, err := st.RawWeather(ctx, "w-raw")
	require.NoError(t, err)
	require.JSONEq(t, `{"main":{"temp":71.2}}`, string(raw))
}
