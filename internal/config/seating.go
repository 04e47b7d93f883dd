package config

import "github.com/logi101/eventflow-seating/internal/seating"

// LoadSeatingDefaults returns the constraints applied to a seating run when
// the request does not override them.  Unset variables fall back to
// seating.DefaultConstraints.
func LoadSeatingDefaults() seating.Constraints {
	def := seating.DefaultConstraints()
	def.MaxTableSize = envInt("SEATING_MAX_TABLE_SIZE", def.MaxTableSize)
	def.MinSharedInterests = envInt("SEATING_MIN_SHARED_INTERESTS", def.MinSharedInterests)
	def.MaxSameTrack = envInt("SEATING_MAX_SAME_TRACK", def.MaxSameTrack)
	def.VIPSpread = envBool("SEATING_VIP_SPREAD", def.VIPSpread)
	def.CompanionsTogether = envBool("SEATING_COMPANIONS_TOGETHER", def.CompanionsTogether)
	return def
}
