package main

import (
	"github.com/skysurvey-tools/authlist/cmd"

	_ "github.com/skysurvey-tools/authlist/target/aanda"
	_ "github.com/skysurvey-tools/authlist/target/aastex"
	_ "github.com/skysurvey-tools/authlist/target/aastex5"
	_ "github.com/skysurvey-tools/authlist/target/arxiv"
	_ "github.com/skysurvey-tools/authlist/target/elsevier"
	_ "github.com/skysurvey-tools/authlist/target/emulateapj"
	_ "github.com/skysurvey-tools/authlist/target/inspire"
	_ "github.com/skysurvey-tools/authlist/target/jcap"
	_ "github.com/skysurvey-tools/authlist/target/jcapappendix"
	_ "github.com/skysurvey-tools/authlist/target/mnras"
	_ "github.com/skysurvey-tools/authlist/target/revtex"
)

func main() {
	cmd.Execute()
}
