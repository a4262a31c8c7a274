//go:build e2e
// +build e2e

package e2e

import (
	"encoding/json"
	"net/http"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type teamBody struct {
	Team struct {
		TeamUID   string   `json:"teamUid"`
		TeamID    string   `json:"teamId"`
		Name      string   `json:"name"`
		Passcode  string   `json:"passcode"`
		CreatorID string   `json:"creatorId"`
		Members   []string `json:"members"`
	} `json:"team"`
}

type quoteBody struct {
	Quote struct {
		ID      string   `json:"id"`
		TeamUID string   `json:"teamUid"`
		Name    string   `json:"name"`
		Text    string   `json:"text"`
		Rating  int      `json:"rating"`
		RatedBy []string `json:"ratedBy"`
	} `json:"quote"`
}

func (s *E2ETestSuite) TestHealth() {
	status, body := s.do(http.MethodGet, "/health", "", nil, nil)
	assert.Equal(s.T(), http.StatusOK, status)
	assert.Contains(s.T(), string(body), `"status":"ok"`)
}

func (s *E2ETestSuite) TestAuthRequired() {
	status, _ := s.do(http.MethodPost, "/team/create", "", map[string]string{
		"name": "backend", "passcode": "secret1",
	}, nil)
	assert.Equal(s.T(), http.StatusUnauthorized, status)
}

func (s *E2ETestSuite) TestTeamLifecycleWithCreatorHandoff() {
	aliceToken := s.syncUser("u1", "Alice")
	bobToken := s.syncUser("u2", "Bob")

	// Alice creates the team.
	status, body := s.do(http.MethodPost, "/team/create", aliceToken, map[string]string{
		"name": "backend", "passcode": "secret1",
	}, nil)
	require.Equal(s.T(), http.StatusCreated, status)

	var created teamBody
	require.NoError(s.T(), json.Unmarshal(body, &created))
	assert.Equal(s.T(), "secret1", created.Team.Passcode)
	assert.Equal(s.T(), []string{"u1"}, created.Team.Members)

	// Bob joins with the full triple.
	status, body = s.do(http.MethodPost, "/team/join", bobToken, map[string]string{
		"name": "backend", "team_id": created.Team.TeamID, "passcode": "secret1",
	}, nil)
	require.Equal(s.T(), http.StatusOK, status)

	var joined teamBody
	require.NoError(s.T(), json.Unmarshal(body, &joined))
	assert.ElementsMatch(s.T(), []string{"u1", "u2"}, joined.Team.Members)
	assert.Empty(s.T(), joined.Team.Passcode)

	// Bob posts a quote attributed to Alice.
	status, body = s.do(http.MethodPost, "/quote/add", bobToken, map[string]string{
		"text": "it works on my machine", "author_uid": "u1",
	}, nil)
	require.Equal(s.T(), http.StatusCreated, status)

	var quote quoteBody
	require.NoError(s.T(), json.Unmarshal(body, &quote))
	assert.Equal(s.T(), "Alice", quote.Quote.Name)

	// Alice leaves; Bob inherits the creator role.
	status, _ = s.do(http.MethodPost, "/team/leave", aliceToken, map[string]string{
		"team_uid": created.Team.TeamUID,
	}, nil)
	require.Equal(s.T(), http.StatusOK, status)

	var creatorID string
	require.NoError(s.T(), s.db.Raw(
		"SELECT creator_id FROM teams WHERE team_uid = ?", created.Team.TeamUID,
	).Scan(&creatorID).Error)
	assert.Equal(s.T(), "u2", creatorID)

	// Bob leaves too; team and quotes are gone.
	status, _ = s.do(http.MethodPost, "/team/leave", bobToken, map[string]string{
		"team_uid": created.Team.TeamUID,
	}, nil)
	require.Equal(s.T(), http.StatusOK, status)

	var teams, quotes int64
	require.NoError(s.T(), s.db.Raw("SELECT COUNT(*) FROM teams").Scan(&teams).Error)
	require.NoError(s.T(), s.db.Raw("SELECT COUNT(*) FROM quotes").Scan(&quotes).Error)
	assert.Zero(s.T(), teams)
	assert.Zero(s.T(), quotes)
}

func (s *E2ETestSuite) TestJoinRejectsPartialTriple() {
	aliceToken := s.syncUser("u1", "Alice")
	bobToken := s.syncUser("u2", "Bob")

	status, body := s.do(http.MethodPost, "/team/create", aliceToken, map[string]string{
		"name": "backend", "passcode": "secret1",
	}, nil)
	require.Equal(s.T(), http.StatusCreated, status)

	var created teamBody
	require.NoError(s.T(), json.Unmarshal(body, &created))

	status, _ = s.do(http.MethodPost, "/team/join", bobToken, map[string]string{
		"name": "backend", "team_id": created.Team.TeamID, "passcode": "wrong1",
	}, nil)
	assert.Equal(s.T(), http.StatusNotFound, status)
}

func (s *E2ETestSuite) TestRatingToggle() {
	aliceToken := s.syncUser("u1", "Alice")
	bobToken := s.syncUser("u2", "Bob")

	status, body := s.do(http.MethodPost, "/team/create", aliceToken, map[string]string{
		"name": "backend", "passcode": "secret1",
	}, nil)
	require.Equal(s.T(), http.StatusCreated, status)

	var created teamBody
	require.NoError(s.T(), json.Unmarshal(body, &created))

	status, _ = s.do(http.MethodPost, "/team/join", bobToken, map[string]string{
		"name": "backend", "team_id": created.Team.TeamID, "passcode": "secret1",
	}, nil)
	require.Equal(s.T(), http.StatusOK, status)

	status, body = s.do(http.MethodPost, "/quote/add", aliceToken, map[string]string{
		"text": "ship it", "author_uid": "u1",
	}, nil)
	require.Equal(s.T(), http.StatusCreated, status)

	var quote quoteBody
	require.NoError(s.T(), json.Unmarshal(body, &quote))

	// Toggle on.
	status, body = s.do(http.MethodPost, "/quote/rate", bobToken, map[string]string{
		"quote_id": quote.Quote.ID,
	}, nil)
	require.Equal(s.T(), http.StatusOK, status)

	var rated struct {
		Rating int  `json:"rating"`
		Rated  bool `json:"rated"`
	}
	require.NoError(s.T(), json.Unmarshal(body, &rated))
	assert.True(s.T(), rated.Rated)
	assert.Equal(s.T(), 1, rated.Rating)

	// Toggle off.
	status, body = s.do(http.MethodPost, "/quote/rate", bobToken, map[string]string{
		"quote_id": quote.Quote.ID,
	}, nil)
	require.Equal(s.T(), http.StatusOK, status)
	require.NoError(s.T(), json.Unmarshal(body, &rated))
	assert.False(s.T(), rated.Rated)
	assert.Equal(s.T(), 0, rated.Rating)
}

func (s *E2ETestSuite) TestReadFacade() {
	aliceToken := s.syncUser("u1", "Alice")
	s.syncUser("u2", "Bob")

	status, body := s.do(http.MethodPost, "/team/create", aliceToken, map[string]string{
		"name": "backend", "passcode": "secret1",
	}, nil)
	require.Equal(s.T(), http.StatusCreated, status)

	var created teamBody
	require.NoError(s.T(), json.Unmarshal(body, &created))

	status, body = s.do(http.MethodPost, "/quote/add", aliceToken, map[string]string{
		"text": "readable quote", "author_uid": "u1",
	}, nil)
	require.Equal(s.T(), http.StatusCreated, status)

	// Missing id header is a client error.
	status, _ = s.do(http.MethodGet, "/api/team", "", nil, nil)
	assert.Equal(s.T(), http.StatusBadRequest, status)

	// Teams by member id; creator sees the passcode.
	status, body = s.do(http.MethodGet, "/api/team", "", nil, map[string]string{"id": "u1"})
	require.Equal(s.T(), http.StatusOK, status)

	var teams []map[string]interface{}
	require.NoError(s.T(), json.Unmarshal(body, &teams))
	require.Len(s.T(), teams, 1)
	assert.Equal(s.T(), "secret1", teams[0]["passcode"])

	// Members by team uid.
	status, body = s.do(http.MethodGet, "/api/members", "", nil, map[string]string{"id": created.Team.TeamUID})
	require.Equal(s.T(), http.StatusOK, status)

	var members []map[string]interface{}
	require.NoError(s.T(), json.Unmarshal(body, &members))
	require.Len(s.T(), members, 1)
	assert.Equal(s.T(), "Alice", members[0]["name"])

	// Quotes by team uid.
	status, body = s.do(http.MethodGet, "/api/quotes", "", nil, map[string]string{"id": created.Team.TeamUID})
	require.Equal(s.T(), http.StatusOK, status)

	var quotes []map[string]interface{}
	require.NoError(s.T(), json.Unmarshal(body, &quotes))
	require.Len(s.T(), quotes, 1)
	assert.Equal(s.T(), "readable quote", quotes[0]["text"])
}

func (s *E2ETestSuite) TestUserMe() {
	token := s.syncUser("u1", "Alice")

	status, body := s.do(http.MethodGet, "/user/me", token, nil, nil)
	require.Equal(s.T(), http.StatusOK, status)
	assert.Contains(s.T(), string(body), `"name":"Alice"`)

	// A fresh identity that never synced is 404.
	freshToken := s.sessionToken("ghost", "Ghost")
	status, _ = s.do(http.MethodGet, "/user/me", freshToken, nil, nil)
	assert.Equal(s.T(), http.StatusNotFound, status)
}
