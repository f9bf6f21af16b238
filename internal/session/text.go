package session

// Text holds the control labels and notification messages used by the
// manager. The UI passes localized values; DefaultText is English.
type Text struct {
	LabelIdle        string
	LabelPreparing   string
	LabelDownloading string
	LabelPathInvalid string
	LabelFailed      string

	Cancelled         string
	DialogUnavailable string
	PathNotWritable   string
	StartFailed       string // prefix, followed by the reason
	Completed         string // prefix, followed by the filename
	DownloadFailed    string // prefix, followed by the reason
	CancelFailed      string
	OpenFailed        string
}

// DefaultText returns the English texts
func DefaultText() Text {
	return Text{
		LabelIdle:        "Download",
		LabelPreparing:   "Preparing...",
		LabelDownloading: "Downloading...",
		LabelPathInvalid: "Invalid path",
		LabelFailed:      "Download failed",

		Cancelled:         "Download cancelled",
		DialogUnavailable: "Cannot open the save dialog",
		PathNotWritable:   "Cannot write to the selected location",
		StartFailed:       "Download failed: ",
		Completed:         "Download completed: ",
		DownloadFailed:    "Download failed: ",
		CancelFailed:      "Failed to cancel download",
		OpenFailed:        "Cannot open file location",
	}
}

// withDefaults fills empty fields from DefaultText
func (t Text) withDefaults() Text {
	d := DefaultText()
	fill := func(v *string, def string) {
		if *v == "" {
			*v = def
		}
	}
	fill(&t.LabelIdle, d.LabelIdle)
	fill(&t.LabelPreparing, d.LabelPreparing)
	fill(&t.LabelDownloading, d.LabelDownloading)
	fill(&t.LabelPathInvalid, d.LabelPathInvalid)
	fill(&t.LabelFailed, d.LabelFailed)
	fill(&t.Cancelled, d.Cancelled)
	fill(&t.DialogUnavailable, d.DialogUnavailable)
	fill(&t.PathNotWritable, d.PathNotWritable)
	fill(&t.StartFailed, d.StartFailed)
	fill(&t.Completed, d.Completed)
	fill(&t.DownloadFailed, d.DownloadFailed)
	fill(&t.CancelFailed, d.CancelFailed)
	fill(&t.OpenFailed, d.OpenFailed)
	return t
}
