package export

import "encoding/xml"

// Document tree for the FCPXML 1.10 interchange schema. Everything is
// generated through these structs and xml.MarshalIndent; attribute
// order follows field order, which the consuming application relies on.

type FCPXML struct {
	XMLName   xml.Name     `xml:"fcpxml"`
	Version   string       `xml:"version,attr"`
	Resources FCPResources `xml:"resources"`
	Library   FCPLibrary   `xml:"library"`
}

// FCPResources holds the per-clip format/asset pairs. Formats and
// Assets are parallel slices indexed by clip; marshaling interleaves
// them so each asset follows its format, matching construction order.
type FCPResources struct {
	Formats []FCPFormat
	Assets  []FCPAsset
}

func (r FCPResources) MarshalXML(e *xml.Encoder, start xml.StartElement) error {
	start.Name = xml.Name{Local: "resources"}
	if err := e.EncodeToken(start); err != nil {
		return err
	}
	for i := range r.Formats {
		if err := e.Encode(r.Formats[i]); err != nil {
			return err
		}
		if i < len(r.Assets) {
			if err := e.Encode(r.Assets[i]); err != nil {
				return err
			}
		}
	}
	return e.EncodeToken(xml.EndElement{Name: start.Name})
}

type FCPFormat struct {
	XMLName       xml.Name `xml:"format"`
	ID            string   `xml:"id,attr"`
	Name          string   `xml:"name,attr"`
	FrameDuration string   `xml:"frameDuration,attr"`
	Width         string   `xml:"width,attr"`
	Height        string   `xml:"height,attr"`
}

type FCPAsset struct {
	XMLName  xml.Name `xml:"asset"`
	ID       string   `xml:"id,attr"`
	Name     string   `xml:"name,attr"`
	Src      string   `xml:"src,attr"`
	Start    string   `xml:"start,attr"`
	HasVideo string   `xml:"hasVideo,attr"`
	HasAudio string   `xml:"hasAudio,attr"`
	Format   string   `xml:"format,attr"`
	Duration string   `xml:"duration,attr"`
}

type FCPLibrary struct {
	Events []FCPEvent `xml:"event"`
}

type FCPEvent struct {
	Name     string       `xml:"name,attr"`
	Projects []FCPProject `xml:"project"`
}

type FCPProject struct {
	Name      string        `xml:"name,attr"`
	Sequences []FCPSequence `xml:"sequence"`
}

type FCPSequence struct {
	Format   string   `xml:"format,attr"`
	Duration string   `xml:"duration,attr"`
	TCStart  string   `xml:"tcStart,attr"`
	TCFormat string   `xml:"tcFormat,attr"`
	Spine    FCPSpine `xml:"spine"`
}

type FCPSpine struct {
	AssetClips []FCPAssetClip `xml:"asset-clip"`
}

type FCPAssetClip struct {
	XMLName  xml.Name     `xml:"asset-clip"`
	Name     string       `xml:"name,attr"`
	Ref      string       `xml:"ref,attr"`
	Offset   string       `xml:"offset,attr"`
	Duration string       `xml:"duration,attr"`
	Start    string       `xml:"start,attr"`
	TCFormat string       `xml:"tcFormat,attr"`
	Metadata *FCPMetadata `xml:"metadata,omitempty"`
	Markers  []FCPMarker  `xml:"marker"`
}

type FCPMetadata struct {
	Entries []FCPMetadataEntry `xml:"md"`
}

type FCPMetadataEntry struct {
	Key   string `xml:"key,attr"`
	Value string `xml:"value,attr"`
}

type FCPMarker struct {
	Start     string `xml:"start,attr"`
	Value     string `xml:"value,attr"`
	Completed string `xml:"completed,attr"`
	Note      string `xml:"note,attr"`
}
