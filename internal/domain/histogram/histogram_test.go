package histogram_test

import (
	"errors"
	"testing"

	"github.com/okian/keyfeat/internal/domain/histogram"
	"github.com/okian/keyfeat/internal/domain/vocab"
	. "github.com/smartystreets/goconvey/convey"
)

func TestFrequencies(t *testing.T) {
	Convey("Given the activity histogrammer", t, func() {
		h := histogram.New(vocab.ActivityNames(), vocab.BucketActivity)

		Convey("When the group is ['Input', 'Remove/Cut', 'Move To']", func() {
			freqs, err := h.Frequencies([]string{"Input", "Remove/Cut", "Move To"})
			So(err, ShouldBeNil)

			Convey("Then frequencies follow the vocabulary order", func() {
				third := 1.0 / 3.0
				So(freqs, ShouldHaveLength, 6)
				So(freqs[0], ShouldEqual, 0)                 // nonproduction
				So(freqs[1], ShouldAlmostEqual, third, 1e-9) // input
				So(freqs[2], ShouldAlmostEqual, third, 1e-9) // remove/cut
				So(freqs[3], ShouldEqual, 0)                 // paste
				So(freqs[4], ShouldEqual, 0)                 // replace
				So(freqs[5], ShouldAlmostEqual, third, 1e-9) // move
			})

			Convey("And the entries sum to 1", func() {
				sum := 0.0
				for _, f := range freqs {
					So(f, ShouldBeBetweenOrEqual, 0, 1)
					sum += f
				}
				So(sum, ShouldAlmostEqual, 1.0, 1e-9)
			})
		})

		Convey("When a value is outside the vocabulary", func() {
			_, err := h.Frequencies([]string{"Input", "Scroll"})

			Convey("Then the bucketing error propagates", func() {
				So(errors.Is(err, vocab.ErrUnknownActivity), ShouldBeTrue)
			})
		})

		Convey("When the group is empty", func() {
			freqs, err := h.Frequencies(nil)
			So(err, ShouldBeNil)

			Convey("Then every entry is explicitly zero", func() {
				So(freqs, ShouldResemble, make([]float64, 6))
			})
		})
	})

	Convey("Given the text-change histogrammer", t, func() {
		h := histogram.New(vocab.TextChangeNames(), vocab.BucketTextChange)

		Convey("When the group is ['q', 'q', 'x']", func() {
			freqs, err := h.Frequencies([]string{"q", "q", "x"})
			So(err, ShouldBeNil)

			Convey("Then alphanum is 2/3 and other is 1/3", func() {
				So(freqs, ShouldHaveLength, 2)
				So(freqs[0], ShouldAlmostEqual, 2.0/3.0, 1e-9)
				So(freqs[1], ShouldAlmostEqual, 1.0/3.0, 1e-9)
			})
		})
	})

	Convey("Given a bucketer that escapes its vocabulary", t, func() {
		h := histogram.New([]string{"a", "b"}, func(string) (string, error) {
			return "c", nil
		})

		Convey("Then Frequencies fails with ErrInvalidBucket", func() {
			_, err := h.Frequencies([]string{"anything"})
			So(errors.Is(err, histogram.ErrInvalidBucket), ShouldBeTrue)
		})
	})
}
