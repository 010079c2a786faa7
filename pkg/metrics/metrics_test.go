package metrics_test

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/kiyose/janstats/pkg/metrics"
	. "github.com/smartystreets/goconvey/convey"
)

func TestGlobalManager(t *testing.T) {
	Convey("Given the global metrics manager", t, func() {
		Convey("Then the custom registry is exposed", func() {
			So(metrics.GetRegistry(), ShouldNotBeNil)
		})

		Convey("Then recording helpers do not panic", func() {
			So(func() {
				metrics.RecordPayloadReload()
				metrics.RecordPayloadReloadError()
				metrics.UpdatePayloadTimestamp(1700000000)
				metrics.RecordBuildDuration(1.5)
				metrics.UpdateGamesTotal(10)
				metrics.UpdatePlayersTracked(6)
				metrics.UpdateMatchRecords(40)
				metrics.RecordHTTPRequest("timeline", "GET", "200")
				metrics.RecordHTTPRequestDuration("timeline", "GET", "200", 2.5)
				metrics.RecordErrorByEndpoint("matches", "GET", "client_error")
			}, ShouldNotPanic)
		})

		Convey("Then the registry gathers the recorded metrics", func() {
			families, err := metrics.GetRegistry().Gather()
			So(err, ShouldBeNil)
			So(len(families), ShouldBeGreaterThan, 0)
		})
	})
}

func TestNewManager(t *testing.T) {
	Convey("Given a manager on a private registry", t, func() {
		registry := prometheus.NewRegistry()
		m := metrics.NewManager(
			metrics.WithRegistry(registry),
			metrics.WithNamespace("test"),
			metrics.WithSubsystem("suite"),
			metrics.WithHistogramBuckets([]float64{1, 5, 10}),
		)

		Convey("Then construction succeeds without panicking", func() {
			So(m, ShouldNotBeNil)
		})
	})
}
