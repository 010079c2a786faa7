package api_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/kiyose/janstats/internal/adapters/http/api"
	"github.com/kiyose/janstats/internal/app"
	"github.com/kiyose/janstats/internal/domain/matches"
	"github.com/kiyose/janstats/internal/domain/roster"
	"github.com/kiyose/janstats/internal/domain/summary"
	"github.com/kiyose/janstats/internal/domain/timeline"
	. "github.com/smartystreets/goconvey/convey"
)

// Mock implementations for testing.
type mockDeps struct {
	chart     timeline.Chart
	summaries []summary.PlayerSummary
	records   []matches.Record
	info      app.SeasonInfo
}

func (m *mockDeps) Chart(_ context.Context) timeline.Chart              { return m.chart }
func (m *mockDeps) Summaries(_ context.Context) []summary.PlayerSummary { return m.summaries }
func (m *mockDeps) Matches(_ context.Context) []matches.Record          { return m.records }
func (m *mockDeps) Season(_ context.Context) app.SeasonInfo             { return m.info }

type mockStatsProvider struct {
	stats map[string]interface{}
}

func (m *mockStatsProvider) GetStats() map[string]interface{} { return m.stats }

func newTestServer(deps *mockDeps) *http.ServeMux {
	server := api.NewServer(deps, &mockStatsProvider{stats: map[string]interface{}{"started": true}}, 100)
	mux := http.NewServeMux()
	server.Register(context.Background(), mux)
	return mux
}

func sampleDeps() *mockDeps {
	return &mockDeps{
		chart: timeline.Chart{
			Players: []roster.Member{{ID: "KIYO", Name: "きよ", Color: "#22c55e"}},
			Timeline: []timeline.Point{{
				Label: "10/21-1戦目", Date: "2024-10-21", DailyIndex: 1, GameNumber: 1,
				Scores: map[roster.ID]float64{"KIYO": 12.3},
			}},
		},
		summaries: []summary.PlayerSummary{{ID: "KIYO", Name: "きよ", RankHistory: []summary.RankPoint{}}},
		records: []matches.Record{
			{Date: "2024-11-04", Room: "第2戦 (11/4-1戦目)", Rank: 1, Score: 45200, Nameplate: "きよ", Points: 65.2},
			{Date: "2024-10-21", Room: "第1戦 (10/21-1戦目)", Rank: 1, Score: -7700, Nameplate: "やまだ", Points: 12.3},
		},
		info: app.SeasonInfo{GeneratedAt: "2025-01-01T00:00:00Z", Source: "data", HasSeason: true},
	}
}

func TestServerRoutes(t *testing.T) {
	Convey("Given a registered API server", t, func() {
		mux := newTestServer(sampleDeps())

		Convey("When requesting the health endpoint", func() {
			req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
			w := httptest.NewRecorder()
			mux.ServeHTTP(w, req)

			Convey("Then it responds ok with a request id", func() {
				So(w.Code, ShouldEqual, http.StatusOK)
				So(w.Header().Get(api.RequestIDHeader), ShouldNotBeEmpty)
			})
		})

		Convey("When requesting the timeline", func() {
			req := httptest.NewRequest(http.MethodGet, "/api/timeline", nil)
			w := httptest.NewRecorder()
			mux.ServeHTTP(w, req)

			Convey("Then the chart serializes with flattened points", func() {
				So(w.Code, ShouldEqual, http.StatusOK)

				var body struct {
					Players  []map[string]any `json:"players"`
					Timeline []map[string]any `json:"timeline"`
				}
				So(json.Unmarshal(w.Body.Bytes(), &body), ShouldBeNil)
				So(len(body.Players), ShouldEqual, 1)
				So(len(body.Timeline), ShouldEqual, 1)
				So(body.Timeline[0]["hand"], ShouldEqual, "10/21-1戦目")
				So(body.Timeline[0]["KIYO"], ShouldEqual, 12.3)
			})
		})

		Convey("When requesting player summaries", func() {
			req := httptest.NewRequest(http.MethodGet, "/api/players", nil)
			w := httptest.NewRecorder()
			mux.ServeHTTP(w, req)

			Convey("Then the summaries serialize", func() {
				So(w.Code, ShouldEqual, http.StatusOK)

				var body []map[string]any
				So(json.Unmarshal(w.Body.Bytes(), &body), ShouldBeNil)
				So(len(body), ShouldEqual, 1)
				So(body[0]["id"], ShouldEqual, "KIYO")
			})
		})

		Convey("When requesting match history", func() {
			req := httptest.NewRequest(http.MethodGet, "/api/matches", nil)
			w := httptest.NewRecorder()
			mux.ServeHTTP(w, req)

			Convey("Then all records return most recent first", func() {
				So(w.Code, ShouldEqual, http.StatusOK)

				var body []matches.Record
				So(json.Unmarshal(w.Body.Bytes(), &body), ShouldBeNil)
				So(len(body), ShouldEqual, 2)
				So(body[0].Date, ShouldEqual, "2024-11-04")
			})
		})

		Convey("When limiting match history", func() {
			req := httptest.NewRequest(http.MethodGet, "/api/matches?limit=1", nil)
			w := httptest.NewRecorder()
			mux.ServeHTTP(w, req)

			Convey("Then only the newest records return", func() {
				var body []matches.Record
				So(json.Unmarshal(w.Body.Bytes(), &body), ShouldBeNil)
				So(len(body), ShouldEqual, 1)
				So(body[0].Nameplate, ShouldEqual, "きよ")
			})
		})

		Convey("When filtering match history by player", func() {
			req := httptest.NewRequest(http.MethodGet, "/api/matches?player=やまだ", nil)
			w := httptest.NewRecorder()
			mux.ServeHTTP(w, req)

			Convey("Then only that player's records return", func() {
				var body []matches.Record
				So(json.Unmarshal(w.Body.Bytes(), &body), ShouldBeNil)
				So(len(body), ShouldEqual, 1)
				So(body[0].Nameplate, ShouldEqual, "やまだ")
			})
		})

		Convey("When the match limit is invalid", func() {
			req := httptest.NewRequest(http.MethodGet, "/api/matches?limit=abc", nil)
			w := httptest.NewRecorder()
			mux.ServeHTTP(w, req)

			Convey("Then the request is rejected", func() {
				So(w.Code, ShouldEqual, http.StatusBadRequest)
			})
		})

		Convey("When the match limit exceeds the maximum", func() {
			req := httptest.NewRequest(http.MethodGet, "/api/matches?limit=5000", nil)
			w := httptest.NewRecorder()
			mux.ServeHTTP(w, req)

			Convey("Then the request is rejected", func() {
				So(w.Code, ShouldEqual, http.StatusBadRequest)

				var body map[string]string
				So(json.Unmarshal(w.Body.Bytes(), &body), ShouldBeNil)
				So(body["code"], ShouldEqual, "limit_exceeded")
			})
		})

		Convey("When requesting season metadata", func() {
			req := httptest.NewRequest(http.MethodGet, "/api/season", nil)
			w := httptest.NewRecorder()
			mux.ServeHTTP(w, req)

			Convey("Then the metadata serializes", func() {
				So(w.Code, ShouldEqual, http.StatusOK)

				var body app.SeasonInfo
				So(json.Unmarshal(w.Body.Bytes(), &body), ShouldBeNil)
				So(body.GeneratedAt, ShouldEqual, "2025-01-01T00:00:00Z")
				So(body.HasSeason, ShouldBeTrue)
			})
		})

		Convey("When requesting stats", func() {
			req := httptest.NewRequest(http.MethodGet, "/stats", nil)
			w := httptest.NewRecorder()
			mux.ServeHTTP(w, req)

			Convey("Then the stats serialize", func() {
				So(w.Code, ShouldEqual, http.StatusOK)

				var body map[string]any
				So(json.Unmarshal(w.Body.Bytes(), &body), ShouldBeNil)
				So(body["started"], ShouldEqual, true)
			})
		})

		Convey("When using an unsupported method", func() {
			req := httptest.NewRequest(http.MethodPost, "/api/timeline", nil)
			w := httptest.NewRecorder()
			mux.ServeHTTP(w, req)

			Convey("Then the route is not found", func() {
				So(w.Code, ShouldEqual, http.StatusNotFound)
			})
		})
	})
}
