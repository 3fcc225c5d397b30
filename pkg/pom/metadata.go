package pom

import (
	"strings"

	"github.com/matzehuels/mavenpub/pkg/errors"
)

// Defaults applied by Build.
const (
	DefaultLicenseName = "The Apache Software License, Version 2.0"
	DefaultLicenseURL  = "https://www.apache.org/licenses/LICENSE-2.0.txt"
	DefaultPackaging   = "jar"

	githubPrefix  = "https://github.com"
	githubSystem  = "GitHub"
	gitSuffix     = ".git"
	issuesSegment = "/issues"
)

// License is a <license> entry.
type License struct {
	Name         string `xml:"name" json:"name"`
	URL          string `xml:"url" json:"url"`
	Distribution string `xml:"distribution,omitempty" json:"distribution,omitempty"`
}

// Developer is a <developer> entry.
type Developer struct {
	ID   string `xml:"id,omitempty" json:"id,omitempty"`
	Name string `xml:"name,omitempty" json:"name,omitempty"`
}

// SCM holds source-control locations.
type SCM struct {
	URL                 string `xml:"url,omitempty" json:"url,omitempty"`
	Connection          string `xml:"connection,omitempty" json:"connection,omitempty"`
	DeveloperConnection string `xml:"developerConnection,omitempty" json:"developer_connection,omitempty"`
}

// IssueManagement describes the issue tracker.
type IssueManagement struct {
	System string `xml:"system" json:"system"`
	URL    string `xml:"url" json:"url"`
}

// Metadata is the descriptive part of a POM.
// IssueManagement is nil when the git URL is not hosted on GitHub.
type Metadata struct {
	Name            string           `json:"name"`
	Packaging       string           `json:"packaging"`
	Description     string           `json:"description,omitempty"`
	URL             string           `json:"url"`
	Licenses        []License        `json:"licenses"`
	Developers      []Developer      `json:"developers,omitempty"`
	SCM             SCM              `json:"scm"`
	IssueManagement *IssueManagement `json:"issue_management,omitempty"`
}

// Inputs are the template values Build copies into Metadata.
type Inputs struct {
	ArtifactID          string // Required
	URL                 string // Required project URL
	Name                string // Display name already set elsewhere; defaults to ArtifactID
	Description         string
	GitURL              string // Defaults to URL + ".git"
	DevID               string
	DevName             string
	LicenseName         string // Defaults to DefaultLicenseName
	LicenseURL          string // Defaults to DefaultLicenseURL
	LicenseDistribution string
	Packaging           string // Defaults to "jar"
}

// Build assembles Metadata from in. It fails only when the artifact id or
// project URL is missing.
func Build(in Inputs) (*Metadata, error) {
	if err := errors.Required("artifactId", in.ArtifactID); err != nil {
		return nil, err
	}
	if err := errors.Required("project url", in.URL); err != nil {
		return nil, err
	}

	gitURL := or(in.GitURL, in.URL+gitSuffix)

	m := &Metadata{
		Name:        or(in.Name, in.ArtifactID),
		Packaging:   or(in.Packaging, DefaultPackaging),
		Description: in.Description,
		URL:         in.URL,
		Licenses: []License{{
			Name:         or(in.LicenseName, DefaultLicenseName),
			URL:          or(in.LicenseURL, DefaultLicenseURL),
			Distribution: in.LicenseDistribution,
		}},
		SCM: SCM{
			URL:                 in.URL,
			Connection:          gitURL,
			DeveloperConnection: gitURL,
		},
		IssueManagement: IssueTracker(gitURL),
	}
	if in.DevID != "" || in.DevName != "" {
		m.Developers = []Developer{{ID: in.DevID, Name: in.DevName}}
	}
	return m, nil
}

// IssueTracker derives the GitHub issue tracker from a git URL, or returns
// nil when the URL is not hosted on GitHub. Only a trailing ".git" is
// removed; ".git" elsewhere in the URL is kept as-is.
func IssueTracker(gitURL string) *IssueManagement {
	if !strings.HasPrefix(gitURL, githubPrefix) {
		return nil
	}
	return &IssueManagement{
		System: githubSystem,
		URL:    strings.TrimSuffix(gitURL, gitSuffix) + issuesSegment,
	}
}

func or(v, def string) string {
	if v == "" {
		return def
	}
	return v
}
