package export

import "encoding/xml"

// Document tree for the legacy XMEML track/clip-item schema, shared by
// the version-4 (frame unit) and version-5 (tick unit) variants.
// Numeric time fields are int64 so tick counters fit; child order
// follows field order and is contractual for re-import.

type XMEML struct {
	XMLName  xml.Name       `xml:"xmeml"`
	Version  string         `xml:"version,attr"`
	Project  *XMEMLProject  `xml:"project,omitempty"`
	Sequence *XMEMLSequence `xml:"sequence,omitempty"`
}

type XMEMLProject struct {
	Name     string        `xml:"name"`
	Sequence XMEMLSequence `xml:"sequence"`
}

type XMEMLSequence struct {
	Name     string         `xml:"name"`
	Duration int64          `xml:"duration"`
	Rate     XMEMLRate      `xml:"rate"`
	Media    XMEMLMedia     `xml:"media"`
	Timecode *XMEMLTimecode `xml:"timecode,omitempty"`
}

// XMEMLRate is the rate block this schema repeats on every timed node:
// the nearest-integer timebase plus the NTSC-like flag for fractional
// rates.
type XMEMLRate struct {
	Timebase int    `xml:"timebase"`
	NTSC     string `xml:"ntsc"`
}

type XMEMLTimecode struct {
	Rate          XMEMLRate `xml:"rate"`
	String        string    `xml:"string"`
	Frame         int64     `xml:"frame"`
	DisplayFormat string    `xml:"displayformat"`
}

type XMEMLMedia struct {
	Video *XMEMLVideo `xml:"video,omitempty"`
	Audio *XMEMLAudio `xml:"audio,omitempty"`
}

type XMEMLVideo struct {
	Format *XMEMLVideoFormat `xml:"format,omitempty"`
	Track  XMEMLTrack        `xml:"track"`
}

type XMEMLAudio struct {
	Track XMEMLTrack `xml:"track"`
}

type XMEMLVideoFormat struct {
	SampleCharacteristics XMEMLSampleCharacteristics `xml:"samplecharacteristics"`
}

type XMEMLSampleCharacteristics struct {
	Rate   XMEMLRate `xml:"rate"`
	Width  int       `xml:"width"`
	Height int       `xml:"height"`
}

type XMEMLTrack struct {
	ClipItems []XMEMLClipItem `xml:"clipitem"`
}

type XMEMLClipItem struct {
	ID       string         `xml:"id,attr"`
	Name     string         `xml:"name"`
	Duration int64          `xml:"duration"`
	Rate     XMEMLRate      `xml:"rate"`
	Start    int64          `xml:"start"`
	End      int64          `xml:"end"`
	In       int64          `xml:"in"`
	Out      int64          `xml:"out"`
	File     *XMEMLFile     `xml:"file,omitempty"`
	Markers  []XMEMLMarker  `xml:"marker"`
	Labels   *XMEMLLabels   `xml:"labels,omitempty"`
}

// XMEMLFile doubles as a full file definition (video clip items) and a
// bare id-only back reference (the mirrored audio clip items).
type XMEMLFile struct {
	ID      string          `xml:"id,attr"`
	Name    string          `xml:"name,omitempty"`
	PathURL string          `xml:"pathurl,omitempty"`
	Rate    *XMEMLRate      `xml:"rate,omitempty"`
	Media   *XMEMLFileMedia `xml:"media,omitempty"`
}

type XMEMLFileMedia struct {
	Video XMEMLFileVideo `xml:"video"`
}

type XMEMLFileVideo struct {
	SampleCharacteristics XMEMLSampleCharacteristics `xml:"samplecharacteristics"`
}

type XMEMLMarker struct {
	Name    string `xml:"name"`
	Comment string `xml:"comment"`
	In      int64  `xml:"in"`
	Out     int64  `xml:"out"`
}

// XMEMLLabels is present whenever a clip carried analyzer metadata;
// only the category renders as label2, so a score-only clip yields an
// empty labels element.
type XMEMLLabels struct {
	Label2 string `xml:"label2,omitempty"`
}
