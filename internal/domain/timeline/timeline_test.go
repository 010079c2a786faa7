package timeline_test

import (
	"encoding/json"
	"testing"

	"github.com/kiyose/janstats/internal/domain/roster"
	"github.com/kiyose/janstats/internal/domain/season"
	"github.com/kiyose/janstats/internal/domain/timeline"
	. "github.com/smartystreets/goconvey/convey"
)

func entry(name string, score float64, rank int) season.Participant {
	return season.Participant{Name: name, Score: score, HasScore: true, Rank: rank, HasRank: true}
}

func payloadWith(history ...season.Game) *season.Payload {
	standings := []season.Standing{
		{Rank: 1, Name: "きよ"},
		{Rank: 2, Name: "やまだ"},
		{Rank: 3, Name: "れい"},
	}
	return &season.Payload{
		GeneratedAt: "2025-01-01T00:00:00Z",
		Seasons:     []season.Season{{Players: standings, History: history}},
	}
}

func TestBuild(t *testing.T) {
	reg := roster.Default()

	Convey("Given a season with a single game", t, func() {
		p := payloadWith(season.Game{
			GameIndex: 1,
			Date:      "2024-10-21",
			Players:   []season.Participant{entry("きよ", 12.3, 1)},
		})
		chart := timeline.Build(p, reg)

		Convey("Then one point is emitted with the player's score", func() {
			So(len(chart.Timeline), ShouldEqual, 1)
			point := chart.Timeline[0]
			So(point.Label, ShouldEqual, "10/21-1戦目")
			So(point.GameNumber, ShouldEqual, 1)
			So(point.DailyIndex, ShouldEqual, 1)
			So(point.Scores[roster.ID("KIYO")], ShouldEqual, 12.3)
		})

		Convey("Then the legend follows registry order filtered to the standings", func() {
			So(len(chart.Players), ShouldEqual, 3)
			So(chart.Players[0].ID, ShouldEqual, roster.ID("KIYO"))
			So(chart.Players[1].ID, ShouldEqual, roster.ID("YAMADA"))
			So(chart.Players[2].ID, ShouldEqual, roster.ID("REI"))
		})
	})

	Convey("Given a season with several games", t, func() {
		p := payloadWith(
			season.Game{GameIndex: 1, Date: "2024-10-21", Players: []season.Participant{
				entry("きよ", 12.3, 1),
				entry("やまだ", -5.1, 3),
			}},
			season.Game{GameIndex: 2, Date: "2024-10-21", Players: []season.Participant{
				entry("やまだ", 20.0, 1),
			}},
			season.Game{GameIndex: 3, Date: "2024-11-04", Players: []season.Participant{
				entry("きよ", -2.3, 4),
				entry("やまだ", 1.1, 2),
			}},
		)
		chart := timeline.Build(p, reg)

		Convey("Then one point per game with 1-based game numbers", func() {
			So(len(chart.Timeline), ShouldEqual, 3)
			for i, point := range chart.Timeline {
				So(point.GameNumber, ShouldEqual, i+1)
			}
		})

		Convey("Then same-day games get sequential daily indices", func() {
			So(chart.Timeline[0].Label, ShouldEqual, "10/21-1戦目")
			So(chart.Timeline[1].Label, ShouldEqual, "10/21-2戦目")
			So(chart.Timeline[2].Label, ShouldEqual, "11/4-1戦目")
		})

		Convey("Then absent players carry their previous value forward", func() {
			So(chart.Timeline[0].Scores[roster.ID("KIYO")], ShouldEqual, 12.3)
			So(chart.Timeline[1].Scores[roster.ID("KIYO")], ShouldEqual, 12.3)
			So(chart.Timeline[2].Scores[roster.ID("KIYO")], ShouldEqual, 10.0)
		})

		Convey("Then cumulative values match the running sum at one decimal", func() {
			So(chart.Timeline[2].Scores[roster.ID("YAMADA")],
				ShouldEqual, season.RoundTenth(-5.1+20.0+1.1))
		})
	})

	Convey("Given a participant outside the registry", t, func() {
		p := payloadWith(season.Game{GameIndex: 1, Date: "2024-10-21", Players: []season.Participant{
			entry("ゲスト", 30.0, 1),
			entry("きよ", -10.0, 4),
		}})
		chart := timeline.Build(p, reg)

		Convey("Then the unknown name contributes nothing", func() {
			point := chart.Timeline[0]
			_, tracked := point.Scores[roster.ID("ゲスト")]
			So(tracked, ShouldBeFalse)
			So(point.Scores[roster.ID("KIYO")], ShouldEqual, -10.0)
		})
	})

	Convey("Given an empty payload", t, func() {
		chart := timeline.Build(&season.Payload{}, reg)

		Convey("Then the chart is empty and non-nil", func() {
			So(chart.Players, ShouldNotBeNil)
			So(chart.Timeline, ShouldNotBeNil)
			So(len(chart.Players), ShouldEqual, 0)
			So(len(chart.Timeline), ShouldEqual, 0)
		})
	})
}

func TestPointMarshalJSON(t *testing.T) {
	Convey("Given a timeline point", t, func() {
		point := timeline.Point{
			Label:      "10/21-1戦目",
			Date:       "2024-10-21",
			DailyIndex: 1,
			GameNumber: 1,
			Scores: map[roster.ID]float64{
				"KIYO":   12.3,
				"YAMADA": -5.1,
			},
		}
		data, err := json.Marshal(point)

		Convey("Then the per-player values are flattened onto the object", func() {
			So(err, ShouldBeNil)

			var flat map[string]any
			So(json.Unmarshal(data, &flat), ShouldBeNil)
			So(flat["hand"], ShouldEqual, "10/21-1戦目")
			So(flat["date"], ShouldEqual, "2024-10-21")
			So(flat["dailyIndex"], ShouldEqual, 1)
			So(flat["gameNumber"], ShouldEqual, 1)
			So(flat["KIYO"], ShouldEqual, 12.3)
			So(flat["YAMADA"], ShouldEqual, -5.1)
		})
	})
}
