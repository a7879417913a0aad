package providers

type ProviderType string

var (
	ProviderTypeAWS ProviderType = "aws"
)

type BackendType string

var (
	BackendTypeS3    BackendType = "s3"
	BackendTypeGCS   BackendType = "gcs"
	BackendTypeLocal BackendType = "local"
)

func (p ProviderType) String() string {
	return string(p)
}

func (b BackendType) String() string {
	return string(b)
}

const DefaultPartition = "aws"

// Provider is the account and region templates are synthesized for.
type Provider struct {
	Type      ProviderType
	AccountID string
	Region    string
	Partition string
}

// Backend is where synthesized templates are published.
type Backend struct {
	Type        BackendType
	Bucket      string
	Prefix      string
	Region      string
	Profile     string
	Credentials string
}
