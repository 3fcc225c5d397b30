package pom

import (
	"bytes"
	"encoding/xml"

	"github.com/matzehuels/mavenpub/pkg/errors"
)

const (
	modelVersion   = "4.0.0"
	pomNamespace   = "http://maven.apache.org/POM/4.0.0"
	xsiNamespace   = "http://www.w3.org/2001/XMLSchema-instance"
	schemaLocation = "http://maven.apache.org/POM/4.0.0 https://maven.apache.org/xsd/maven-4.0.0.xsd"
)

// Coordinate identifies an artifact.
type Coordinate struct {
	GroupID    string `json:"group_id"`
	ArtifactID string `json:"artifact_id"`
	Version    string `json:"version"`
}

// String returns "groupId:artifactId:version".
func (c Coordinate) String() string {
	return c.GroupID + ":" + c.ArtifactID + ":" + c.Version
}

// Validate checks that all three parts are present and well-formed.
func (c Coordinate) Validate() error {
	if err := errors.ValidateCoordinatePart("groupId", c.GroupID); err != nil {
		return err
	}
	if err := errors.ValidateCoordinatePart("artifactId", c.ArtifactID); err != nil {
		return err
	}
	return errors.ValidateCoordinatePart("version", c.Version)
}

// Document is the XML shape of a POM file.
type Document struct {
	XMLName         xml.Name         `xml:"project"`
	Xmlns           string           `xml:"xmlns,attr"`
	XmlnsXsi        string           `xml:"xmlns:xsi,attr"`
	SchemaLocation  string           `xml:"xsi:schemaLocation,attr"`
	ModelVersion    string           `xml:"modelVersion"`
	GroupID         string           `xml:"groupId"`
	ArtifactID      string           `xml:"artifactId"`
	Version         string           `xml:"version"`
	Packaging       string           `xml:"packaging,omitempty"`
	Name            string           `xml:"name,omitempty"`
	Description     string           `xml:"description,omitempty"`
	URL             string           `xml:"url,omitempty"`
	Licenses        []License        `xml:"licenses>license,omitempty"`
	Developers      []Developer      `xml:"developers>developer,omitempty"`
	SCM             *SCM             `xml:"scm"`
	IssueManagement *IssueManagement `xml:"issueManagement"`
}

// NewDocument combines a coordinate and its metadata into a POM document.
func NewDocument(c Coordinate, m *Metadata) *Document {
	scm := m.SCM
	return &Document{
		Xmlns:           pomNamespace,
		XmlnsXsi:        xsiNamespace,
		SchemaLocation:  schemaLocation,
		ModelVersion:    modelVersion,
		GroupID:         c.GroupID,
		ArtifactID:      c.ArtifactID,
		Version:         c.Version,
		Packaging:       m.Packaging,
		Name:            m.Name,
		Description:     m.Description,
		URL:             m.URL,
		Licenses:        m.Licenses,
		Developers:      m.Developers,
		SCM:             &scm,
		IssueManagement: m.IssueManagement,
	}
}

// Marshal renders the POM for c and m as indented XML with a declaration.
func Marshal(c Coordinate, m *Metadata) ([]byte, error) {
	if m == nil {
		return nil, errors.New(errors.ErrCodeInvalidInput, "metadata cannot be nil")
	}
	var buf bytes.Buffer
	buf.WriteString(xml.Header)
	enc := xml.NewEncoder(&buf)
	enc.Indent("", "  ")
	if err := enc.Encode(NewDocument(c, m)); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "encode pom for %s", c)
	}
	buf.WriteByte('\n')
	return buf.Bytes(), nil
}
