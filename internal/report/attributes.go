package report

// Lookup keys. They are the standard Java system property names so values
// read from a JVM can be stored without translation.
const (
	KeyJavaVersion      = "java.version"
	KeyJavaVendor       = "java.vendor"
	KeyJavaHome         = "java.home"
	KeyJavaClassVersion = "java.class.version"
	KeyJavaClassPath    = "java.class.path"
	KeyOSName           = "os.name"
	KeyOSVersion        = "os.version"
	KeyUserName         = "user.name"
	KeyUserHome         = "user.home"
	KeyUserDir          = "user.dir"
)

// Attribute pairs a printed label with the property key it resolves.
type Attribute struct {
	Label string
	Key   string
}

var attributes = [...]Attribute{
	{"Java Version", KeyJavaVersion},
	{"Java Vendor", KeyJavaVendor},
	{"Java Home", KeyJavaHome},
	{"Java Class Version", KeyJavaClassVersion},
	{"Java Class Path", KeyJavaClassPath},
	{"OS Name", KeyOSName},
	{"OS Version", KeyOSVersion},
	{"User Name", KeyUserName},
	{"User Home", KeyUserHome},
	{"User Dir", KeyUserDir},
}

// Attributes returns the attribute list in report order. The returned slice
// is a copy.
func Attributes() []Attribute {
	out := make([]Attribute, len(attributes))
	copy(out, attributes[:])
	return out
}
