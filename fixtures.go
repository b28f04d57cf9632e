package go_pkcrypto

// Parameter sets used by the tests, the examples and the CLI.
//
// The small sets are the worked examples from the Handbook of Applied
// Cryptography (HAC), chapters 8 and 11. The large sets use 2048-bit moduli;
// the DSA set has a 256-bit subgroup order.
//
// Each function returns a fresh instance so callers may set Rand freely.

// FixtureMessage is the message the large fixtures are exercised with.
const FixtureMessage = "1482726341215123"

const (
	rsaModulus = "2428556745661657253505316370404051769633905352063452351395949072" +
		"4007229796719740152317361083535903559526887151910583738749192724" +
		"0737521146858836526894255601882383756214599586172054573909945316" +
		"4796604855225243125383771514260715424958327526340396179302272522" +
		"5708928576824094708202567623969946919484541872521257547449677583" +
		"9164372721777922879100131779360250887021703458541710690598161262" +
		"7948960401888516308228669953507242422848883220777614306654375883" +
		"1629156184365560217187829162278060910799742497812823133120175704" +
		"7765119136692841706737531278294115724419935080653739653710035981" +
		"77072369409326086217971424873326320403767"

	rsaPublicExponent = "65537"

	rsaPrivateExponent = "4246648504704608408253494301666300453179815269946314897996181755" +
		"3004082193327162083335666572672147762665078773959029196647046495" +
		"5498724742207038252927074659745200092500314518139637978089929860" +
		"5149624126963590981719947747597204444820854395511076218747279110" +
		"8324201823459133826083193458763079130459564804475885059040987485" +
		"4662116556887342109278882917371250777172045406123701264943422975" +
		"1644062202815204041718422716997993742509002869211664920269003099" +
		"4396807428467747586691527608306882423447000504319068856747691636" +
		"7872346802588879652077134496866962051865154789916795160030554561" +
		"3239608787193640741107853748457567524673"

	elgamalPrime = "2118479522421253696406288305043283289621918004330674574950717345" +
		"6191006787311146854668821513315952228690166108340246881055280083" +
		"9540211402303601091392105491834300056056168290494804651890855458" +
		"3247972733274538788653864176981579475231181769963229445991373690" +
		"2844395790405051970352731077204037998783513130589208851997845158" +
		"6384720724686160250464025532242955028600567128833427901136899353" +
		"1698524681879371393025266739882998840504214316709618275721651362" +
		"7895445171115572143858787433983678864090060986677504505167265543" +
		"0592269051149374362660497204133728976710840911677541476499338195" +
		"26873415745134475534382738086734552688143"

	elgamalGenerator = "5"

	elgamalPublic = "1980766544426504165799017710738503334974783992667066967138534677" +
		"9887167874349638280822801372810919990395863498154790640244438754" +
		"0369777401637827359153262182150207320862914782363452357162558366" +
		"0341018855584704333482363927122500950395967520046146421713502080" +
		"9968239213787524669134970143391638737520877381736741234294852676" +
		"6876541892177727562230530698242850666831796990407127191552419831" +
		"3833568160488227092088070777254275941527578219213996787209131456" +
		"9380301748781104585325131212122744030265022966524566056609327022" +
		"8256962746893222860188170501100305417387424163971128623619740867" +
		"01732959305990984850610177647733174357595"

	elgamalPrivate = "1270742310900726690413026462488924015958858380202122408190957963" +
		"265926396562890535592476096127516928825"

	dsaPrime = "1893022015643088470778758198266715004034243034058131814488287381" +
		"9932152076526785030251961196398351578194563868897190745374095251" +
		"7584243942613608051688064606562497034699406877590824627436402716" +
		"3741221926968140126648636316240631442407451952434819452187145673" +
		"6447930149129093028417492206038678352211028807489939631756679248" +
		"8248394743942198589605094628558445155697892363136736782093697158" +
		"0618585661748890807419311031594371910531869545171291933730429682" +
		"4652370502454793202621451876158511543613732739890414338549063471" +
		"7711270638772038943616629184168708454551559493613660868222916550" +
		"22313839293705976131720601764349138188763"

	dsaOrder = "7732947268894386378280968431430961141209917480679366993185638842" +
		"3150706393447"

	dsaGenerator = "9776352536598101331432253534187162046797971077269626288014571662" +
		"2331104931646508806869706798230278237826939799167321769559130105" +
		"3862138958020119745183585044934940149861580041076603238085461178" +
		"6555966853817267325239512000930084764892283051664768149497273193" +
		"0300004009305587099698981517985767304139460756523019245033195727" +
		"1195569569312957832811726972169624819521101950314684348807563328" +
		"7525582407824111700730431268482972630743457867358536579474264670" +
		"6934322132017311345124770241667513252492931555667714183391225986" +
		"6099544299635538260392547371566126260896259823442750865483162152" +
		"6829645072886787047595607539558463000444"

	dsaPublic = "1072439257513020715607109526564159730348589298443267715519816024" +
		"3874833612494142949396125374542186243165624569971691773432654567" +
		"4392403679097064452197198284075668608801841500966758864633330755" +
		"9790189943894441176828551804740437484457463737924888394724354712" +
		"7317112321816149952128981946891128067470332020385770766406208444" +
		"9056123300880216799216524045049509610067534771564577047842191781" +
		"6681613307616883392615437040648066491971556638113243848447275074" +
		"3002339128065378009284094527365506266826999182633125457061276960" +
		"3666867902607668657628556603743920889202509788207322286006797530" +
		"02316993258157710832553602657970334455236"

	dsaPrivate = "6728069648352560886973005150225507048112915556425477147661115863" +
		"5103194927878"
)

// FixtureRSASmall returns the HAC example 8.3 key: n = 2357*2551.
func FixtureRSASmall() *RSA {
	return NewRSA(MustBigInt("6012707"), MustBigInt("3674911"), MustBigInt("422191"))
}

// FixtureRSA returns a 2048-bit RSA key with e = 65537.
func FixtureRSA() *RSA {
	return NewRSA(MustBigInt(rsaModulus), MustBigInt(rsaPublicExponent), MustBigInt(rsaPrivateExponent))
}

// FixtureElGamalSmall returns the HAC example 8.18 key: p = 2357, g = 2.
func FixtureElGamalSmall() *ElGamal {
	return NewElGamal(MustBigInt("2357"), MustBigInt("2"), MustBigInt("1185"), MustBigInt("1751"))
}

// FixtureElGamal returns a 2048-bit ElGamal key with g = 5.
func FixtureElGamal() *ElGamal {
	return NewElGamal(MustBigInt(elgamalPrime), MustBigInt(elgamalGenerator), MustBigInt(elgamalPublic), MustBigInt(elgamalPrivate))
}

// FixtureDSASmall returns the HAC example 11.57 key: p = 124540019, q = 17389.
func FixtureDSASmall() *DSA {
	return NewDSA(
		MustBigInt("124540019"),
		MustBigInt("17389"),
		MustBigInt("10083255"),
		MustBigInt("119946265"),
		MustBigInt("12496"),
	)
}

// FixtureDSA returns a DSA key with a 2048-bit p and a 256-bit q.
func FixtureDSA() *DSA {
	return NewDSA(MustBigInt(dsaPrime), MustBigInt(dsaOrder), MustBigInt(dsaGenerator), MustBigInt(dsaPublic), MustBigInt(dsaPrivate))
}
