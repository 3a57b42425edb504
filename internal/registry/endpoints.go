package registry

import (
	"fmt"
	"strings"

	"github.com/aberghammer-analytics/nbastatgo/internal/common"
)

// DataType selects which transformations apply beyond the base set.
type DataType string

// Supported data types.
const (
	DataTypeBase   DataType = "base"
	DataTypePlayer DataType = "player"
	DataTypeGame   DataType = "game"
	DataTypeSeason DataType = "season"
	DataTypeTeam   DataType = "team"
)

// ParseDataType maps a tag to a DataType; an unrecognized tag is a
// caller-contract violation, not a data-quality issue.
func ParseDataType(tag string) (DataType, error) {
	switch DataType(strings.ToLower(strings.TrimSpace(tag))) {
	case DataTypeBase, "":
		return DataTypeBase, nil
	case DataTypePlayer:
		return DataTypePlayer, nil
	case DataTypeGame:
		return DataTypeGame, nil
	case DataTypeSeason:
		return DataTypeSeason, nil
	case DataTypeTeam:
		return DataTypeTeam, nil
	default:
		return "", fmt.Errorf("%w: %q", common.ErrUnknownDataType, tag)
	}
}

// Stats API endpoints grouped by the kind of table they return.
var (
	playerEndpoints = []string{
		"commonplayerinfo",
		"playercareerstats",
		"playerdashboardbygeneralsplits",
		"playerdashboardbygamesplits",
		"playerdashboardbyshootingsplits",
		"playerawards",
		"playergamelog",
		"draftcombinestats",
	}

	gameEndpoints = []string{
		"boxscoretraditionalv3",
		"boxscoreadvancedv3",
		"boxscoredefensivev2",
		"boxscorefourfactorsv3",
		"boxscorehustlev2",
		"boxscorematchupsv3",
		"boxscoremiscv3",
		"boxscorescoringv3",
		"boxscoreusagev3",
		"boxscoreplayertrackv3",
		"gamerotation",
		"playbyplayv3",
		"winprobabilitypbp",
	}

	seasonEndpoints = []string{
		"leaguedashlineups",
		"leaguelineupviz",
		"leaguedashopppptshot",
		"leaguedashplayerclutch",
		"leaguedashplayerptshot",
		"leaguedashplayershotlocations",
		"leaguedashplayerstats",
		"leaguedashteamclutch",
		"leaguedashteamptshot",
		"leaguedashteamshotlocations",
		"leaguedashteamstats",
		"playergamelogs",
		"leaguegamelog",
		"leaguehustlestatsplayer",
		"leaguehustlestatsteam",
		"leagueseasonmatchups",
		"playerestimatedmetrics",
		"synergyplaytypes",
		"leaguedashptstats",
		"leaguedashptdefend",
		"leaguedashptteamdefend",
	}

	teamEndpoints = []string{
		"commonteamroster",
		"teamyearbyyearstats",
		"teamdashboardbygeneralsplits",
		"teamdashboardbyshootingsplits",
		"franchiseleaders",
		"franchiseplayers",
		"teamdashptpass",
		"teamplayeronoffdetails",
	}

	endpointTypes = buildEndpointTypes()
)

func buildEndpointTypes() map[string]DataType {
	m := make(map[string]DataType)
	for _, e := range playerEndpoints {
		m[e] = DataTypePlayer
	}
	for _, e := range gameEndpoints {
		m[e] = DataTypeGame
	}
	for _, e := range seasonEndpoints {
		m[e] = DataTypeSeason
	}
	for _, e := range teamEndpoints {
		m[e] = DataTypeTeam
	}
	return m
}

// DataTypeForEndpoint answers which data type a stats endpoint's tables
// should be standardized as. Unknown endpoints fall back to base.
func DataTypeForEndpoint(endpoint string) DataType {
	if dt, ok := endpointTypes[strings.ToLower(strings.TrimSpace(endpoint))]; ok {
		return dt
	}
	return DataTypeBase
}
