package funding

import "sort"

// Profile describes a founder looking for funding programs.
type Profile struct {
	Type     string `json:"type"`     // 예비창업자, 초기창업자, 소상공인, 예술인
	Stage    string `json:"stage"`    // 아이디어, 시제품, 초기매출, 성장
	Region   string `json:"region"`   // 서울, 전국, ...
	Category string `json:"category"` // 기술, 콘텐츠, 일반, 예술
	Age      *int   `json:"age,omitempty"`
}

// Match filters the catalog against a profile and ranks the results.
// A program is eligible when all three hold:
//   - its target list contains the profile type, or it targets 예비창업자
//     and the profile is an 초기창업자
//   - its stage list contains the profile stage
//   - it is nationwide or its region list contains the profile region
//
// Eligible programs are ordered by exact-match score (target hit worth 2,
// region hit worth 1, descending), ties keeping catalog order.
func Match(profile Profile) []Program {
	var matched []Program
	for _, p := range programs {
		if matchesTarget(p, profile.Type) && matchesStage(p, profile.Stage) && matchesRegion(p, profile.Region) {
			matched = append(matched, p)
		}
	}
	sort.SliceStable(matched, func(i, j int) bool {
		return score(matched[i], profile) > score(matched[j], profile)
	})
	return matched
}

func matchesTarget(p Program, founderType string) bool {
	for _, t := range p.Target {
		if t == founderType {
			return true
		}
		if t == TargetPreFounder && founderType == TargetEarlyFounder {
			return true
		}
	}
	return false
}

func matchesStage(p Program, stage string) bool {
	return contains(p.Stage, stage)
}

func matchesRegion(p Program, region string) bool {
	return contains(p.Region, RegionNationwide) || contains(p.Region, region)
}

func score(p Program, profile Profile) int {
	s := 0
	if contains(p.Target, profile.Type) {
		s += 2
	}
	if contains(p.Region, profile.Region) {
		s++
	}
	return s
}

func contains(list []string, v string) bool {
	for _, item := range list {
		if item == v {
			return true
		}
	}
	return false
}
