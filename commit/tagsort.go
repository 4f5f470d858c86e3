package commit

import (
	"regexp"
	"sort"
	"strings"

	"github.com/blang/semver/v4"

	"github.com/jeffrom/chlog/model"
)

// FilterTags keeps tags whose name matches the release filter. Non-matching
// tags are invisible to the changelog: their commits are treated as
// ordinary commits.
func FilterTags(tags []*model.Tag, filter *regexp.Regexp) []*model.Tag {
	var res []*model.Tag
	for _, tag := range tags {
		if filter.MatchString(tag.Name) {
			res = append(res, tag)
		}
	}
	return res
}

// SortTags orders tags by committer timestamp ascending. Equal timestamps
// break ties by semantic version when both names parse as one, then by
// name, so the order is deterministic.
func SortTags(tags []*model.Tag) {
	sort.SliceStable(tags, func(i, j int) bool {
		a, b := tags[i], tags[j]
		if !a.CommitterDate.Equal(b.CommitterDate) {
			return a.CommitterDate.Before(b.CommitterDate)
		}
		av, aok := parseTagVersion(a.Name)
		bv, bok := parseTagVersion(b.Name)
		if aok && bok {
			if av.EQ(bv) {
				return a.Name < b.Name
			}
			return av.LT(bv)
		}
		return a.Name < b.Name
	})
}

func parseTagVersion(name string) (semver.Version, bool) {
	v, err := semver.ParseTolerant(strings.TrimPrefix(name, "v"))
	if err != nil {
		return semver.Version{}, false
	}
	return v, true
}
