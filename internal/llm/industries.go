package llm

// AllowedIndustries is the closed set of canonical industry labels the
// generative service may answer with. Slice order is part of the observable
// contract: response normalization walks the list front to back and the
// first matching entry wins.
var AllowedIndustries = []string{
	"accounting",
	"airlines/aviation",
	"apparel & fashion",
	"arts and crafts",
	"automotive",
	"aviation & aerospace",
	"banking",
	"biotechnology",
	"broadcast media",
	"building materials",
	"business supplies and equipment",
	"capital markets",
	"chemicals",
	"civic & social organization",
	"civil engineering",
	"commercial real estate",
	"computer hardware",
	"computer networking",
	"computer software",
	"construction",
	"consumer electronics",
	"consumer goods",
	"consumer services",
	"cosmetics",
	"defense & space",
	"design",
	"education management",
	"electrical/electronic manufacturing",
	"entertainment",
	"environmental services",
	"facilities services",
	"farming",
	"financial services",
	"food & beverages",
	"food production",
	"glass, ceramics & concrete",
	"government administration",
	"graphic design",
	"health, wellness and fitness",
	"higher education",
	"hospital & health care",
	"hospitality",
	"human resources",
	"individual & family services",
	"industrial automation",
	"information services",
	"information technology and services",
	"insurance",
	"international affairs",
	"international trade and development",
	"internet",
	"investment banking",
	"judiciary",
	"law enforcement",
	"law practice",
	"legal services",
	"legislative office",
	"leisure, travel & tourism",
	"logistics and supply chain",
	"luxury goods & jewelry",
	"machinery",
	"management consulting",
	"marketing and advertising",
	"mechanical or industrial engineering",
	"media production",
	"medical devices",
	"medical practice",
	"mental health care",
	"military",
	"mining & metals",
	"motion pictures and film",
	"music",
	"non-profit organization management",
	"oil & energy",
	"outsourcing/offshoring",
	"package/freight delivery",
	"packaging and containers",
	"paper & forest products",
	"pharmaceuticals",
	"philanthropy",
	"photography",
	"primary/secondary education",
	"printing",
	"professional training & coaching",
	"public policy",
	"public relations and communications",
	"publishing",
	"railroad manufacture",
	"real estate",
	"renewables & environment",
	"research",
	"restaurants",
	"retail",
	"security and investigations",
	"semiconductors",
	"sporting goods",
	"staffing and recruiting",
	"supermarkets",
	"telecommunications",
	"textiles",
	"tobacco",
	"translation and localization",
	"transportation/trucking/railroad",
	"utilities",
	"wholesale",
	"wine and spirits",
	"wireless",
	"writing and editing",
	"Other",
}
