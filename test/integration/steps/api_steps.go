package steps

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/cucumber/godog"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

func registerAPISteps(ctx *godog.ScenarioContext, tc *TestContext) {
	ctx.Step(`^I am authenticated as "([^"]*)"$`, tc.iAmAuthenticatedAs)
	ctx.Step(`^I am not authenticated$`, tc.iAmNotAuthenticated)
	ctx.Step(`^my access token is "([^"]*)"$`, tc.myAccessTokenIs)

	ctx.Step(`^I send a (GET|POST|PUT|DELETE) request to "([^"]*)"$`, tc.iSendARequestTo)
	ctx.Step(`^I send a (POST|PUT) request to "([^"]*)" with body:$`, tc.iSendARequestToWithBody)

	ctx.Step(`^the response status should be (\d+)$`, tc.theResponseStatusShouldBe)
	ctx.Step(`^the response field "([^"]*)" should be "([^"]*)"$`, tc.theResponseFieldShouldBe)
	ctx.Step(`^the response list "([^"]*)" should have (\d+) items$`, tc.theResponseListShouldHaveItems)
	ctx.Step(`^the response should contain "([^"]*)"$`, tc.theResponseShouldContain)
}

// iAmAuthenticatedAs signs an access token the way the identity provider
// would. The user id is derived from the email so repeated steps for the same
// email hit the same account.
func (tc *TestContext) iAmAuthenticatedAs(email string) error {
	userID := uuid.NewSHA1(uuid.NameSpaceURL, []byte(email))
	nome := strings.SplitN(email, "@", 2)[0]

	now := time.Now()
	claims := jwt.MapClaims{
		"sub":   userID.String(),
		"email": email,
		"nome":  nome,
		"iat":   now.Unix(),
		"exp":   now.Add(time.Hour).Unix(),
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testJWTSecret))
	if err != nil {
		return fmt.Errorf("failed to sign token: %w", err)
	}

	tc.accessToken = signed
	return nil
}

func (tc *TestContext) iAmNotAuthenticated() error {
	tc.accessToken = ""
	return nil
}

func (tc *TestContext) myAccessTokenIs(token string) error {
	tc.accessToken = token
	return nil
}

func (tc *TestContext) iSendARequestTo(method, path string) error {
	return tc.doRequest(method, path, nil)
}

func (tc *TestContext) iSendARequestToWithBody(method, path string, body *godog.DocString) error {
	return tc.doRequest(method, path, []byte(body.Content))
}

func (tc *TestContext) doRequest(method, path string, body []byte) error {
	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}

	req, err := http.NewRequest(method, tc.server.URL+path, reader)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if tc.accessToken != "" {
		req.Header.Set("Authorization", "Bearer "+tc.accessToken)
	}

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	tc.lastStatus = resp.StatusCode
	tc.lastBody, err = io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response body: %w", err)
	}
	return nil
}

func (tc *TestContext) theResponseStatusShouldBe(expected int) error {
	if tc.lastStatus != expected {
		return fmt.Errorf("expected status %d, got %d (body: %s)", expected, tc.lastStatus, tc.lastBody)
	}
	return nil
}

func (tc *TestContext) theResponseFieldShouldBe(path, expected string) error {
	value, err := tc.responseField(path)
	if err != nil {
		return err
	}
	if got := fmt.Sprintf("%v", value); got != expected {
		return fmt.Errorf("expected field %q to be %q, got %q", path, expected, got)
	}
	return nil
}

func (tc *TestContext) theResponseListShouldHaveItems(path string, count int) error {
	value, err := tc.responseField(path)
	if err != nil {
		return err
	}
	list, ok := value.([]interface{})
	if !ok {
		return fmt.Errorf("field %q is not a list: %T", path, value)
	}
	if len(list) != count {
		return fmt.Errorf("expected %d items in %q, got %d", count, path, len(list))
	}
	return nil
}

func (tc *TestContext) theResponseShouldContain(substring string) error {
	if !strings.Contains(string(tc.lastBody), substring) {
		return fmt.Errorf("expected body to contain %q, got: %s", substring, tc.lastBody)
	}
	return nil
}

// responseField walks a dotted path through the last JSON response. Numeric
// segments index into arrays.
func (tc *TestContext) responseField(path string) (interface{}, error) {
	var parsed interface{}
	if err := json.Unmarshal(tc.lastBody, &parsed); err != nil {
		return nil, fmt.Errorf("response is not valid JSON: %w (body: %s)", err, tc.lastBody)
	}

	current := parsed
	for _, segment := range strings.Split(path, ".") {
		switch node := current.(type) {
		case map[string]interface{}:
			value, ok := node[segment]
			if !ok {
				return nil, fmt.Errorf("field %q not found in path %q (body: %s)", segment, path, tc.lastBody)
			}
			current = value
		case []interface{}:
			index, err := strconv.Atoi(segment)
			if err != nil || index < 0 || index >= len(node) {
				return nil, fmt.Errorf("invalid array index %q in path %q", segment, path)
			}
			current = node[index]
		default:
			return nil, fmt.Errorf("cannot descend into %T at %q in path %q", current, segment, path)
		}
	}
	return current, nil
}
