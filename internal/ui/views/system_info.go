package views

import "github.com/pterm/pterm"

type SystemInfoItem struct {
	ConfigPath      string
	StorageBackend  string
	SnapshotPath    string
	SnapshotExists  bool
	DefaultCurrency string
	AppDataDir      string
	Accounts        int
	Friends         int
}

// RenderSystemInfo prints the "more" page: configuration, where local
// state lives, and what the dataset holds.
func RenderSystemInfo(data SystemInfoItem) error {
	snapshotStatus := pterm.Green("Found")
	if !data.SnapshotExists {
		snapshotStatus = pterm.Gray("Not Found (seed data in use)")
	}

	tableData := pterm.TableData{
		{"Configuration File", data.ConfigPath},
		{"Storage Backend", data.StorageBackend},
		{"Snapshot Path", data.SnapshotPath},
		{"Snapshot Status", snapshotStatus},
		{"Default Currency", data.DefaultCurrency},
		{"AppData Directory", data.AppDataDir},
		{"Accounts", pterm.Sprintf("%d", data.Accounts)},
		{"Friends", pterm.Sprintf("%d", data.Friends)},
	}

	if err := pterm.DefaultTable.WithData(tableData).Render(); err != nil {
		return err
	}

	pterm.DefaultSection.Println("Quick Access")
	links := [][]string{
		{"account list", "All accounts"},
		{"history", "Transaction history"},
		{"account show", "Account profile"},
		{"send", "Send money"},
		{"friends", "Friends"},
	}
	for _, l := range links {
		pterm.Printfln("  %s  %s", pterm.Cyan(pterm.Sprintf("%-14s", l[0])), pterm.FgGray.Sprint(l[1]))
	}
	return nil
}
