package config

// FoldersConfig names the record folders a triage run operates on
type FoldersConfig struct {
	Inbox   string
	Archive string
	Review  string
}

// MailboxConfig represents the configuration for the record store
type MailboxConfig struct {
	Type string
}

// TriageConfig represents the configuration for the triage run
type TriageConfig struct {
	ArchiveSenders  []string
	ReviewSenders   []string
	UseBuiltinLists bool
	DryRun          bool
	ReportLimit     int
}

// SampleConfig holds the defaults for the sampling tool
type SampleConfig struct {
	Folder string
	Count  int
}

// SendersConfig holds the defaults for the sender-frequency tool
type SendersConfig struct {
	Folder string
	Limit  int
}

// GetFolders returns the folder configuration
func (c *Config) GetFolders() FoldersConfig {
	return FoldersConfig{
		Inbox:   c.GetString("folders.inbox"),
		Archive: c.GetString("folders.archive"),
		Review:  c.GetString("folders.review"),
	}
}

// GetMailbox returns the record store configuration
func (c *Config) GetMailbox() MailboxConfig {
	return MailboxConfig{
		Type: c.GetString("mailbox.type"),
	}
}

// GetTriage returns the triage configuration
func (c *Config) GetTriage() TriageConfig {
	return TriageConfig{
		ArchiveSenders:  c.GetStringSlice("triage.archive_senders"),
		ReviewSenders:   c.GetStringSlice("triage.review_senders"),
		UseBuiltinLists: c.GetBool("triage.use_builtin_lists"),
		DryRun:          c.GetBool("triage.dry_run"),
		ReportLimit:     c.GetInt("triage.report_limit"),
	}
}

// GetSample returns the sampling configuration
func (c *Config) GetSample() SampleConfig {
	return SampleConfig{
		Folder: c.GetString("sample.folder"),
		Count:  c.GetInt("sample.count"),
	}
}

// GetSenders returns the sender-frequency configuration
func (c *Config) GetSenders() SendersConfig {
	return SendersConfig{
		Folder: c.GetString("senders.folder"),
		Limit:  c.GetInt("senders.limit"),
	}
}
