package gameplay

import (
	"github.com/leonelquinteros/gotext"

	"tangrin/pkg/game/entities"
	"tangrin/pkg/game/renderer"
)

// Message ids double as the English text when no catalogue is loaded.
const (
	msgOfferInstructions   = "Do you need instructions? (y/n)"
	msgInstructionsSkipped = "Oh all right - I'll just get on with it."
	msgContinue            = "please hit ENTER"

	msgTideCheck     = "You have %d minutes before the tide returns"
	msgTideIn        = "DENIED{Tide is in}"
	msgCarriedAway   = "Sploosh!!!\nTide's in! - You are carried\nto some deep cave."
	msgExits         = "You can now go : %s"
	msgCommands      = "Type in: ACTION{open}, ACTION{pickup}, ACTION{dump}, ACTION{swap}, ACTION{end}, ACTION{north}, ACTION{south}, ACTION{east} or ACTION{west}."
	msgInvalidMove   = "DENIED{Can't go that way}"
	msgInvalidInput  = "Don't understand your banter, squadron leader!"
	msgRoom          = "ROOM{%s}"
	msgVisibleItem   = "%s is ITEM{%s}."
	msgNextToRock    = "Next to a rock"
	msgAgainstWall   = "Against a wall"
	msgOnGround      = "On the ground"
	msgInTorchlight  = "Reflecting in your torchlight"
	msgGotOut        = "You got out with the treasure."
	msgNextGame      = "Hit any key for next game"
	msgPlayAgain     = "Play again? (y/n)"
	msgGoodbye       = "Goodbye."
	msgMeetGhost     = "You meet up with the ghost of Tangrin who can take you out,\nbut he only speaks French"
	msgNoDictionary  = "Unfortunately, you ne comprends pas."
	msgHasDictionary = "As you have the dictionary you can talk to him."
	msgTeleportOffer = "Entrez oui pour retourner à la grotte - dit-il"
	msgGhostSteals   = "However the fellow is un ratbag and steals ITEM{%s} from you"
	msgGhostThanks   = "MERCI BIEN!!"

	msgNothingHere     = "Nothing here."
	msgMagicalForce    = "A magical force stops you from taking it."
	msgYouHold         = "You hold the following"
	msgHoldingLine     = "%d. ITEM{%s}"
	msgNoHands         = "Sorry no hands or pockets."
	msgPickedUp        = "OK I've picked up the ITEM{%s}."
	msgSomethingHere   = "Sorry there is already something here."
	msgNothingWithYou  = "You don't have anything with you!"
	msgWhichOne        = "Which one (1-3)"
	msgDumped          = "OK I've put down the ITEM{%s}."
	msgTooHeavy        = "Sorry- too heavy to move."
	msgNothingToSwap   = "You have nothing to swap!"
	msgWhichToSwap     = "PLEASE ENTER ITEM TO SWAP"
	msgNowGot          = "OK I've now got ITEM{%s}"
	msgCannotOpen      = "How can you open ITEM{%s}?"
	msgYumYum          = "YUM YUM"
	msgNoCanOpener     = "Sorry you don't have a can opener."
	msgCorrectKey      = "Yes! You have the correct key.\nThe %s fits.\nRight let's open it..."
	msgInsideIs        = "Inside is ITEM{%s}"
	msgContainerMenu   = "Enter ACTION{Swap}, ACTION{Pickup} or ACTION{Leave}"
	msgHoldThree       = "You hold 3 items."
	msgWhichItemToSwap = "Which item to swap?"
	msgWrongKey        = "Sorry you don't have the key for the ITEM{%s}."

	msgExhausted    = "DENIED{YOU ARE EXTREMELY EXHAUSTED}"
	msgDied         = "DENIED{YOU HAVE BECOME A VICTIM OF THE CAVES ON TANGRIN}"
	msgWeary        = "YOU ARE VERY WEARY, AND MUST GET OUT FAST"
	msgTired        = "YOU ARE GETTING TIRED - YOU SHOULD THINK OF RETURNING"
	msgPeckish      = "YOU ARE STILL QUITE FIT, BUT GETTING PECKISH"
	msgLessStrong   = "YOU ARE NOT QUITE AS STRONG NOW"
	msgStrong       = "YOU ARE STRONG ENOUGH TO TACKLE ANYTHING"
	msgEfficient    = "YOU ARE AT 100% EFFICIENCY"
	msgFullStrength = "YOU ARE AT MAXIMUM STRENGTH - MAKE THE MOST OF IT"
)

// statusMessages maps stamina bands to their report; the steady band says nothing.
var statusMessages = map[entities.StaminaStatus][]string{
	entities.StatusDead:         {msgExhausted, msgDied},
	entities.StatusExhausted:    {msgExhausted},
	entities.StatusWeary:        {msgWeary},
	entities.StatusTired:        {msgTired},
	entities.StatusPeckish:      {msgPeckish},
	entities.StatusLessStrong:   {msgLessStrong},
	entities.StatusStrong:       {msgStrong},
	entities.StatusEfficient:    {msgEfficient},
	entities.StatusFullStrength: {msgFullStrength},
}

// dynamicGet is used for translation lookups of message ids held in constants
// and tables, which go vet's printf check cannot follow.
var dynamicGet = gotext.Get

// logMessage translates msg, shows it and records it in the game's message log
func logMessage(s *Session, msg string, a ...any) {
	text := dynamicGet(msg, a...)
	s.Game.AddMessage(renderer.PlainText(text))
	s.Out.ShowMessage(text)
}
