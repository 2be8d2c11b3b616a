package aggregate_test

import (
	"fmt"
	"testing"

	"github.com/Bloch-AI/fifa-dashboard/internal/domain/aggregate"
	"github.com/Bloch-AI/fifa-dashboard/internal/domain/model"
	. "github.com/smartystreets/goconvey/convey"
)

func TestTopClubs(t *testing.T) {
	Convey("Given a filtered view", t, func() {
		Convey("When aggregating the reference scenario", func() {
			players := []model.Player{
				{Name: "P1", Age: 20, OverallRating: 70, Nationality: "A", Club: "X"},
				{Name: "P3", Age: 30, OverallRating: 80, Nationality: "A", Club: "X"},
			}
			got := aggregate.TopClubs(players, 10)

			Convey("Then one club with the exact arithmetic mean comes back", func() {
				So(got, ShouldHaveLength, 1)
				So(got[0].Club, ShouldEqual, "X")
				So(got[0].MeanRating, ShouldEqual, 75.0)
				So(got[0].Players, ShouldEqual, 2)
			})
		})

		Convey("When the view is empty", func() {
			got := aggregate.TopClubs([]model.Player{}, 10)

			Convey("Then the aggregate is empty, not an error", func() {
				So(got, ShouldBeEmpty)
			})
		})

		Convey("When 15 distinct clubs each have one record", func() {
			players := make([]model.Player, 0, 15)
			for i := 0; i < 15; i++ {
				players = append(players, model.Player{
					Name:          fmt.Sprintf("P%d", i),
					OverallRating: 60 + i,
					Club:          fmt.Sprintf("Club%02d", i),
				})
			}
			got := aggregate.TopClubs(players, 10)

			Convey("Then exactly the 10 highest-rated clubs come back, descending", func() {
				So(got, ShouldHaveLength, 10)
				So(got[0].Club, ShouldEqual, "Club14")
				So(got[0].MeanRating, ShouldEqual, 74.0)
				So(got[9].Club, ShouldEqual, "Club05")
				for i := 1; i < len(got); i++ {
					So(got[i].MeanRating, ShouldBeLessThan, got[i-1].MeanRating)
				}
			})
		})

		Convey("When clubs tie on mean rating", func() {
			players := []model.Player{
				{Name: "P1", OverallRating: 80, Club: "Zeta"},
				{Name: "P2", OverallRating: 80, Club: "Alpha"},
				{Name: "P3", OverallRating: 80, Club: "Mid"},
			}
			got := aggregate.TopClubs(players, 10)

			Convey("Then ties order by club name ascending", func() {
				So(got, ShouldHaveLength, 3)
				So(got[0].Club, ShouldEqual, "Alpha")
				So(got[1].Club, ShouldEqual, "Mid")
				So(got[2].Club, ShouldEqual, "Zeta")
			})
		})

		Convey("When fewer clubs exist than the limit", func() {
			players := []model.Player{
				{Name: "P1", OverallRating: 70, Club: "X"},
				{Name: "P2", OverallRating: 90, Club: "Y"},
			}
			got := aggregate.TopClubs(players, 10)

			Convey("Then truncation is a no-op", func() {
				So(got, ShouldHaveLength, 2)
				So(got[0].Club, ShouldEqual, "Y")
				So(got[1].Club, ShouldEqual, "X")
			})
		})

		Convey("When means are fractional", func() {
			players := []model.Player{
				{Name: "P1", OverallRating: 70, Club: "X"},
				{Name: "P2", OverallRating: 71, Club: "X"},
				{Name: "P3", OverallRating: 90, Club: "Y"},
			}
			got := aggregate.TopClubs(players, 10)

			Convey("Then the mean is the floating-point sum over count", func() {
				So(got[0].Club, ShouldEqual, "Y")
				So(got[1].Club, ShouldEqual, "X")
				So(got[1].MeanRating, ShouldAlmostEqual, 70.5)
			})
		})

		Convey("When the limit is not positive", func() {
			players := []model.Player{{Name: "P1", OverallRating: 70, Club: "X"}}
			So(aggregate.TopClubs(players, 0), ShouldBeEmpty)
		})
	})
}
