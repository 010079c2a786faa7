package roster_test

import (
	"testing"

	"github.com/kiyose/janstats/internal/domain/roster"
	. "github.com/smartystreets/goconvey/convey"
)

func TestRegistry(t *testing.T) {
	Convey("Given the default registry", t, func() {
		reg := roster.Default()

		Convey("Then it tracks the six league players", func() {
			So(reg.Size(), ShouldEqual, 6)
		})

		Convey("When resolving a known display name", func() {
			m, ok := reg.Resolve("きよ")

			Convey("Then it returns the member", func() {
				So(ok, ShouldBeTrue)
				So(m.ID, ShouldEqual, roster.ID("KIYO"))
				So(m.Color, ShouldEqual, "#22c55e")
			})
		})

		Convey("When resolving an unknown display name", func() {
			_, ok := reg.Resolve("ゲスト")

			Convey("Then it reports absence without error", func() {
				So(ok, ShouldBeFalse)
			})
		})

		Convey("Then Members preserves the canonical order", func() {
			members := reg.Members()
			So(members[0].ID, ShouldEqual, roster.ID("KIYO"))
			So(members[1].ID, ShouldEqual, roster.ID("YAMADA"))
			So(members[5].ID, ShouldEqual, roster.ID("HINATA"))
		})

		Convey("Then Members returns a copy", func() {
			members := reg.Members()
			members[0].Name = "changed"
			So(reg.Members()[0].Name, ShouldEqual, "きよ")
		})
	})

	Convey("Given a custom registry", t, func() {
		reg := roster.New(
			roster.Member{ID: "A", Name: "あ", Color: "#000000"},
			roster.Member{ID: "B", Name: "い", Color: "#ffffff"},
		)

		Convey("Then it resolves only its own members", func() {
			_, ok := reg.Resolve("きよ")
			So(ok, ShouldBeFalse)

			m, ok := reg.Resolve("あ")
			So(ok, ShouldBeTrue)
			So(m.ID, ShouldEqual, roster.ID("A"))
		})
	})
}
