package taxonomy

// defaultEquivalence maps canonical titles to the variants recruiters use
// interchangeably for the same role.
var defaultEquivalence = map[string][]string{
	"Software Engineer":         {"Software Developer", "Application Developer", "Programmer", "SDE"},
	"Java Developer":            {"Java Engineer", "J2EE Developer", "Java Programmer"},
	"Python Developer":          {"Python Engineer", "Python Programmer"},
	".NET Developer":            {"DotNet Developer", "C# Developer", ".NET Engineer"},
	"Golang Developer":          {"Go Developer", "Golang Engineer"},
	"Frontend Developer":        {"Front End Developer", "Front-End Developer", "UI Developer", "Frontend Engineer"},
	"Backend Developer":         {"Back End Developer", "Back-End Developer", "Backend Engineer", "Server Side Developer"},
	"Full Stack Developer":      {"Fullstack Developer", "Full-Stack Developer", "Full Stack Engineer"},
	"Mobile Developer":          {"Mobile Engineer", "Mobile Application Developer"},
	"iOS Developer":             {"iOS Engineer", "Swift Developer"},
	"Android Developer":         {"Android Engineer", "Kotlin Developer"},
	"DevOps Engineer":           {"DevOps Developer", "Platform Engineer", "Release Engineer"},
	"Site Reliability Engineer": {"SRE", "Reliability Engineer"},
	"Cloud Engineer":            {"Cloud Developer", "Cloud Infrastructure Engineer"},
	"QA Engineer":               {"Quality Assurance Engineer", "Test Engineer", "QA Analyst", "SDET"},
	"Data Engineer":             {"ETL Developer", "Big Data Engineer", "Data Pipeline Engineer"},
	"Data Analyst":              {"Business Intelligence Analyst", "BI Analyst", "Reporting Analyst"},
	"Data Scientist":            {"Machine Learning Scientist"},
	"Machine Learning Engineer": {"ML Engineer", "AI Engineer"},
	"Business Analyst":          {"Business Systems Analyst", "BA"},
	"Project Manager":           {"Technical Project Manager", "IT Project Manager"},
	"Product Manager":           {"Product Owner"},
	"Database Administrator":    {"DBA", "Database Admin"},
	"Security Engineer":         {"Information Security Engineer", "Cybersecurity Engineer"},
	"Salesforce Developer":      {"SFDC Developer", "Salesforce Engineer"},
}

// defaultHierarchy maps specific titles to the broader roles they roll up
// into. Chains stay within two hops.
var defaultHierarchy = map[string][]string{
	"Java Developer":            {"Backend Developer", "Software Engineer"},
	"Python Developer":          {"Backend Developer", "Software Engineer"},
	".NET Developer":            {"Backend Developer", "Software Engineer"},
	"Golang Developer":          {"Backend Developer", "Software Engineer"},
	"Node.js Developer":         {"Backend Developer", "Software Engineer"},
	"React Developer":           {"Frontend Developer", "Software Engineer"},
	"Angular Developer":         {"Frontend Developer", "Software Engineer"},
	"Vue Developer":             {"Frontend Developer", "Software Engineer"},
	"iOS Developer":             {"Mobile Developer", "Software Engineer"},
	"Android Developer":         {"Mobile Developer", "Software Engineer"},
	"Frontend Developer":        {"Software Engineer"},
	"Backend Developer":         {"Software Engineer"},
	"Full Stack Developer":      {"Software Engineer"},
	"Mobile Developer":          {"Software Engineer"},
	"Salesforce Developer":      {"Software Engineer"},
	"Machine Learning Engineer": {"Data Scientist"},
	"Site Reliability Engineer": {"DevOps Engineer"},
	"Cloud Engineer":            {"DevOps Engineer"},
}

// defaultDomains carries per-industry title overrides for specialized titles
// that generic tables miss.
var defaultDomains = map[string]map[string][]string{
	"healthcare": {
		"Epic Analyst":              {"Business Analyst"},
		"Clinical Data Analyst":     {"Data Analyst"},
		"HL7 Integration Developer": {"Software Engineer", "Backend Developer"},
	},
	"finance": {
		"Quantitative Developer": {"Software Engineer", "Backend Developer"},
		"Murex Developer":        {"Software Engineer"},
		"Risk Analyst":           {"Data Analyst", "Business Analyst"},
	},
	"ecommerce": {
		"Magento Developer": {"Backend Developer", "Software Engineer"},
		"Shopify Developer": {"Frontend Developer", "Software Engineer"},
	},
}

// defaultTechRoles maps technology keywords to the roles they imply. Keys are
// matched as case-insensitive substrings of declared skills.
var defaultTechRoles = map[string][]string{
	"java":       {"Java Developer", "Backend Developer", "Software Engineer"},
	"spring":     {"Java Developer", "Backend Developer"},
	"python":     {"Python Developer", "Backend Developer", "Software Engineer"},
	"django":     {"Python Developer", "Backend Developer"},
	"c#":         {".NET Developer", "Backend Developer"},
	".net":       {".NET Developer", "Backend Developer"},
	"golang":     {"Golang Developer", "Backend Developer"},
	"node":       {"Node.js Developer", "Backend Developer"},
	"react":      {"React Developer", "Frontend Developer"},
	"angular":    {"Angular Developer", "Frontend Developer"},
	"vue":        {"Vue Developer", "Frontend Developer"},
	"javascript": {"Frontend Developer", "Full Stack Developer"},
	"typescript": {"Frontend Developer", "Full Stack Developer"},
	"swift":      {"iOS Developer", "Mobile Developer"},
	"kotlin":     {"Android Developer", "Mobile Developer"},
	"flutter":    {"Mobile Developer"},
	"kubernetes": {"DevOps Engineer", "Site Reliability Engineer"},
	"docker":     {"DevOps Engineer"},
	"terraform":  {"DevOps Engineer", "Cloud Engineer"},
	"aws":        {"Cloud Engineer", "DevOps Engineer"},
	"azure":      {"Cloud Engineer", "DevOps Engineer"},
	"selenium":   {"QA Engineer"},
	"cypress":    {"QA Engineer"},
	"sql":        {"Data Analyst", "Database Administrator", "Data Engineer"},
	"spark":      {"Data Engineer"},
	"hadoop":     {"Data Engineer"},
	"kafka":      {"Data Engineer", "Backend Developer"},
	"tensorflow": {"Machine Learning Engineer", "Data Scientist"},
	"pytorch":    {"Machine Learning Engineer", "Data Scientist"},
	"tableau":    {"Data Analyst"},
	"power bi":   {"Data Analyst"},
	"salesforce": {"Salesforce Developer"},
}

// DefaultTables returns a copy of the built-in tables, suitable for merging
// with an overlay.
func DefaultTables() Tables {
	return Tables{
		Equivalence: copyTable(defaultEquivalence),
		Hierarchy:   copyTable(defaultHierarchy),
		Domains:     copyDomains(defaultDomains),
		TechRoles:   copyTable(defaultTechRoles),
	}
}

// Default compiles the built-in tables. The built-ins are covered by tests,
// so compilation cannot fail at runtime.
func Default() *Taxonomy {
	tx, err := New(DefaultTables())
	if err != nil {
		panic(err)
	}
	return tx
}

func copyTable(src map[string][]string) map[string][]string {
	dst := make(map[string][]string, len(src))
	for k, v := range src {
		dst[k] = append([]string(nil), v...)
	}
	return dst
}

func copyDomains(src map[string]map[string][]string) map[string]map[string][]string {
	dst := make(map[string]map[string][]string, len(src))
	for domain, overrides := range src {
		dst[domain] = copyTable(overrides)
	}
	return dst
}
