package vocab_test

import (
	"errors"
	"testing"

	"github.com/okian/keyfeat/internal/domain/vocab"
	. "github.com/smartystreets/goconvey/convey"
)

func TestVocabularies(t *testing.T) {
	Convey("Given the fixed vocabularies", t, func() {
		Convey("Then the activity vocabulary has the six names in order", func() {
			So(vocab.ActivityNames(), ShouldResemble, []string{
				"nonproduction", "input", "remove/cut", "paste", "replace", "move",
			})
		})

		Convey("Then the text-change vocabulary has the two names in order", func() {
			So(vocab.TextChangeNames(), ShouldResemble, []string{"alphanum", "other"})
		})

		Convey("Then every name resolves to its position", func() {
			for i, name := range vocab.ActivityNames() {
				idx, ok := vocab.ActivityIndex(name)
				So(ok, ShouldBeTrue)
				So(idx, ShouldEqual, i)
			}
			for i, name := range vocab.TextChangeNames() {
				idx, ok := vocab.TextChangeIndex(name)
				So(ok, ShouldBeTrue)
				So(idx, ShouldEqual, i)
			}
		})

		Convey("And names outside the vocabulary do not resolve", func() {
			_, ok := vocab.ActivityIndex("scroll")
			So(ok, ShouldBeFalse)
		})
	})
}

func TestBucketActivity(t *testing.T) {
	Convey("Given the activity bucketing rule", t, func() {
		Convey("When the raw value contains the substring Move", func() {
			for _, raw := range []string{
				"Move From [5, 9] To [14, 18]",
				"Move To End",
				"XMoveX",
			} {
				name, err := vocab.BucketActivity(raw)
				So(err, ShouldBeNil)
				So(name, ShouldEqual, "move")
			}
		})

		Convey("When the raw value lower-cases to a vocabulary name", func() {
			cases := map[string]string{
				"Input":         "input",
				"Remove/Cut":    "remove/cut",
				"Nonproduction": "nonproduction",
				"Paste":         "paste",
				"Replace":       "replace",
				"REPLACE":       "replace",
				"move":          "move",
			}
			for raw, want := range cases {
				name, err := vocab.BucketActivity(raw)
				So(err, ShouldBeNil)
				So(name, ShouldEqual, want)
			}
		})

		Convey("When the Move check is case-sensitive", func() {
			// "move to" contains no capital-M "Move" and does not
			// lower-case to a vocabulary name.
			_, err := vocab.BucketActivity("move to")
			So(errors.Is(err, vocab.ErrUnknownActivity), ShouldBeTrue)
		})

		Convey("When the raw value is outside the vocabulary", func() {
			_, err := vocab.BucketActivity("Scroll")
			So(errors.Is(err, vocab.ErrUnknownActivity), ShouldBeTrue)
		})
	})
}

func TestBucketTextChange(t *testing.T) {
	Convey("Given the text-change bucketing rule", t, func() {
		Convey("Then the literal q maps to alphanum", func() {
			name, err := vocab.BucketTextChange("q")
			So(err, ShouldBeNil)
			So(name, ShouldEqual, "alphanum")
		})

		Convey("And everything else maps to other, never failing", func() {
			for _, raw := range []string{"", " ", "\n", "Q", "qq", "=>", "NoChange"} {
				name, err := vocab.BucketTextChange(raw)
				So(err, ShouldBeNil)
				So(name, ShouldEqual, "other")
			}
		})
	})
}
