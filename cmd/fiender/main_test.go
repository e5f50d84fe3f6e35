package main

import (
	"bytes"
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"github.com/KirkDiggler/fiender/internal/clients/external"
	"github.com/KirkDiggler/fiender/internal/errors"
	"github.com/KirkDiggler/fiender/internal/orchestrators/dice"
	dicemock "github.com/KirkDiggler/fiender/internal/orchestrators/dice/mock"
	"github.com/KirkDiggler/fiender/internal/orchestrators/lookup"
	lookupmock "github.com/KirkDiggler/fiender/internal/orchestrators/lookup/mock"
)

type CommandTestSuite struct {
	suite.Suite
	ctrl       *gomock.Controller
	mockLookup *lookupmock.MockService
	mockDice   *dicemock.MockService
	app        *app
	stdout     *bytes.Buffer
	stderr     *bytes.Buffer
}

func (s *CommandTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.mockLookup = lookupmock.NewMockService(s.ctrl)
	s.mockDice = dicemock.NewMockService(s.ctrl)
	s.stdout = &bytes.Buffer{}
	s.stderr = &bytes.Buffer{}

	s.app = newApp()
	s.app.newLookup = func(_ external.Client) (lookup.Service, error) { return s.mockLookup, nil }
	s.app.newDice = func(_ external.Client) (dice.Service, error) { return s.mockDice, nil }
}

func (s *CommandTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func TestCommandTestSuite(t *testing.T) {
	suite.Run(t, new(CommandTestSuite))
}

func (s *CommandTestSuite) execute(args ...string) error {
	cmd := newRootCmd(s.app)
	cmd.SetArgs(args)
	cmd.SetOut(s.stdout)
	cmd.SetErr(s.stderr)
	return cmd.ExecuteContext(context.Background())
}

func (s *CommandTestSuite) TestLookup_DefaultsToCreature() {
	s.mockLookup.EXPECT().
		Lookup(gomock.Any(), &lookup.LookupInput{Kind: lookup.KindCreature, Name: "ancient red dragon", Format: lookup.FormatMarkdown}).
		Return(&lookup.LookupOutput{Document: "###Name:  Ancient Red Dragon\n"}, nil)

	err := s.execute("ancient", "red", "dragon")

	s.Require().NoError(err)
	s.Equal("###Name:  Ancient Red Dragon\n", s.stdout.String())
}

func (s *CommandTestSuite) TestLookup_KindFlags() {
	testCases := []struct {
		name string
		args []string
		kind lookup.Kind
	}{
		{name: "monster long", args: []string{"--monster", "goblin"}, kind: lookup.KindCreature},
		{name: "monster short", args: []string{"-m", "goblin"}, kind: lookup.KindCreature},
		{name: "spell long", args: []string{"--spell", "goblin"}, kind: lookup.KindSpell},
		{name: "spell short", args: []string{"-s", "goblin"}, kind: lookup.KindSpell},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			s.mockLookup.EXPECT().
				Lookup(gomock.Any(), &lookup.LookupInput{Kind: tc.kind, Name: "goblin", Format: lookup.FormatMarkdown}).
				Return(&lookup.LookupOutput{Document: "ok"}, nil)

			s.Require().NoError(s.execute(tc.args...))
		})
	}
}

func (s *CommandTestSuite) TestLookup_YAMLFormat() {
	s.mockLookup.EXPECT().
		Lookup(gomock.Any(), &lookup.LookupInput{Kind: lookup.KindCreature, Name: "goblin", Format: lookup.FormatYAML}).
		Return(&lookup.LookupOutput{Markdown: "###Name:  Goblin\n", Document: "name: Goblin\n"}, nil)

	s.Require().NoError(s.execute("--format", "yaml", "goblin"))
	s.Equal("name: Goblin\n", s.stdout.String())
}

func (s *CommandTestSuite) TestLookup_MutuallyExclusiveFlags() {
	err := s.execute("--monster", "--spell", "goblin")
	s.Require().Error(err)
	s.Contains(err.Error(), "monster")
	s.Empty(s.stdout.String())
}

func (s *CommandTestSuite) TestLookup_RequiresName() {
	err := s.execute()
	s.Require().Error(err)
}

func (s *CommandTestSuite) TestLookup_ErrorPrintsNothing() {
	s.mockLookup.EXPECT().
		Lookup(gomock.Any(), gomock.Any()).
		Return(nil, errors.Remote(404, "https://api.open5e.com/monsters/nonexistent-creature/"))

	err := s.execute("Nonexistent Creature")

	s.Require().Error(err)
	s.True(errors.IsRemote(err))
	s.Contains(err.Error(), "404")
	s.Empty(s.stdout.String())
}

func (s *CommandTestSuite) TestLookup_InvalidBaseURL() {
	err := s.execute("--base-url", "ftp://example.com", "goblin")
	s.Require().Error(err)
	s.True(errors.IsInvalidArgument(err))
}

func (s *CommandTestSuite) TestPages_CountMode() {
	s.mockLookup.EXPECT().
		Walk(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, input *lookup.WalkInput) (*lookup.WalkOutput, error) {
			s.Equal(lookup.KindCreature, input.Kind)
			s.False(input.Collect)
			input.OnPage(1)
			input.OnPage(2)
			return &lookup.WalkOutput{Kind: input.Kind, Pages: 2, Count: 110}, nil
		})

	err := s.execute("pages")

	s.Require().NoError(err)
	s.Equal("Pages scanned: 1\nPages scanned: 2\n", s.stdout.String())
}

func (s *CommandTestSuite) TestPages_CollectSpells() {
	s.mockLookup.EXPECT().
		Walk(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, input *lookup.WalkInput) (*lookup.WalkOutput, error) {
			s.Equal(lookup.KindSpell, input.Kind)
			s.True(input.Collect)
			input.OnPage(1)
			return &lookup.WalkOutput{Kind: input.Kind, Pages: 1, Count: 0}, nil
		})

	err := s.execute("pages", "--spell", "--collect")

	s.Require().NoError(err)
	s.Equal("Pages scanned: 1\nCollected 0 of 0 spells\n", s.stdout.String())
}

func (s *CommandTestSuite) TestRoll() {
	s.mockDice.EXPECT().
		Roll(gomock.Any(), &dice.RollInput{Creature: "goblin", Action: "scimitar"}).
		Return(&dice.RollOutput{Description: "creature:goblin Scimitar 1d6[4]+2 = 6", Total: 6}, nil)

	err := s.execute("roll", "goblin", "scimitar")

	s.Require().NoError(err)
	s.Equal("creature:goblin Scimitar 1d6[4]+2 = 6\nTotal: 6\n", s.stdout.String())
}

func (s *CommandTestSuite) TestRoll_RequiresTwoArgs() {
	err := s.execute("roll", "goblin")
	s.Require().Error(err)
}

func TestPrintError(t *testing.T) {
	testCases := []struct {
		name     string
		err      error
		expected string
	}{
		{
			name:     "remote",
			err:      errors.Remote(404, "https://api.open5e.com/monsters/nobody/"),
			expected: "Error: remote error: https://api.open5e.com/monsters/nobody/ returned status 404\n",
		},
		{
			name: "wrapped remote names the class once",
			err: errors.Wrapf(errors.Remote(404, "https://api.open5e.com/monsters/nobody/"),
				"failed to get creature %q", "Nobody"),
			expected: "Error: remote error: failed to get creature \"Nobody\": https://api.open5e.com/monsters/nobody/ returned status 404\n",
		},
		{
			name:     "plain",
			err:      fmt.Errorf("requires at least 1 arg(s), only received 0"),
			expected: "Error: requires at least 1 arg(s), only received 0\n",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			var buf bytes.Buffer
			printError(&buf, tc.err)
			assert.Equal(t, tc.expected, buf.String())
		})
	}
}
